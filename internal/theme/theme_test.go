package theme

import (
	"strings"
	"testing"
)

func TestPresetLookup(t *testing.T) {
	p := Preset("midnight")
	if p.Name != "Midnight Violet" {
		t.Errorf("midnight name: got %q", p.Name)
	}
	if p.Colors.Accent != "#a78bfa" {
		t.Errorf("midnight accent: got %q", p.Colors.Accent)
	}

	// Unknown ids fall back to the first preset.
	fallback := Preset("nope")
	if fallback.ID != presets[0].ID {
		t.Errorf("unknown preset fell back to %q, want %q", fallback.ID, presets[0].ID)
	}
}

func TestPresetsComplete(t *testing.T) {
	if len(Presets()) != 7 {
		t.Fatalf("expected 7 presets, got %d", len(Presets()))
	}
	seen := make(map[string]bool)
	for _, p := range Presets() {
		if seen[p.ID] {
			t.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		for _, c := range []string{p.Colors.Background, p.Colors.CardBackground, p.Colors.Text, p.Colors.Accent, p.Colors.LinkHover} {
			if !strings.HasPrefix(c, "#") {
				t.Errorf("preset %q has non-hex color %q", p.ID, c)
			}
		}
	}
}

func TestButtonRadius(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"pill", "9999px"},
		{"square", "8px"},
		{"rounded", "12px"},
		{"outline", "12px"},
		{"", "12px"},
	}
	for _, tt := range tests {
		if got := ButtonRadius(tt.style); got != tt.want {
			t.Errorf("ButtonRadius(%q) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestResolvePattern(t *testing.T) {
	dots := ResolvePattern("dots", "#0c0a1a", "#a78bfa")
	if !strings.Contains(dots.Background, "radial-gradient") {
		t.Errorf("dots background: %q", dots.Background)
	}
	if dots.Extra != "background-size: 24px 24px;" {
		t.Errorf("dots extra: %q", dots.Extra)
	}

	grid := ResolvePattern("grid", "#0c0a1a", "#a78bfa")
	if !strings.Contains(grid.Extra, "32px 32px") {
		t.Errorf("grid extra: %q", grid.Extra)
	}

	gradient := ResolvePattern("gradient", "#0c0a1a", "#a78bfa")
	if !strings.Contains(gradient.Extra, "lf-gradient-shift") {
		t.Errorf("gradient should animate, extra: %q", gradient.Extra)
	}
	if !strings.Contains(gradient.Extra, "400% 400%") {
		t.Errorf("gradient extra: %q", gradient.Extra)
	}

	solid := ResolvePattern("none", "#123456", "#a78bfa")
	if solid.Background != "#123456" {
		t.Errorf("solid background: %q", solid.Background)
	}
	if solid.Extra != "" {
		t.Errorf("solid should have no extra, got %q", solid.Extra)
	}
}

func TestSubtle(t *testing.T) {
	got := subtle("#a78bfa", 0.12)
	if got != "rgba(167,139,250,0.12)" {
		t.Errorf("subtle = %q", got)
	}

	// Unparseable colors pass through.
	if got := subtle("#xyz", 0.5); got != "#xyz" {
		t.Errorf("bad color should pass through, got %q", got)
	}
}

func TestGoogleFontsURL(t *testing.T) {
	got := GoogleFontsURL("Space Grotesk")
	want := "https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@400;500;600;700&display=swap"
	if got != want {
		t.Errorf("GoogleFontsURL:\n got %q\nwant %q", got, want)
	}

	// Space Mono carries a reduced weight set.
	mono := GoogleFontsURL("Space Mono")
	if !strings.Contains(mono, "wght@400;700") {
		t.Errorf("Space Mono weights: %q", mono)
	}

	// Empty family defaults to Inter.
	if !strings.Contains(GoogleFontsURL(""), "family=Inter") {
		t.Error("empty family should default to Inter")
	}
}

func TestFontStack(t *testing.T) {
	if got := FontStack("Playfair Display"); !strings.Contains(got, "serif") || strings.Contains(got, "sans-serif") {
		t.Errorf("serif stack: %q", got)
	}
	if got := FontStack("Roboto Mono"); !strings.Contains(got, "monospace") {
		t.Errorf("monospace stack: %q", got)
	}
	if got := FontStack("Unknown Font"); !strings.Contains(got, "system-ui") {
		t.Errorf("unknown family should get the system stack: %q", got)
	}
}

func TestEffectCSS(t *testing.T) {
	if EffectCSS("", "#fff") != "" {
		t.Error("empty effect should emit nothing")
	}
	if EffectCSS("unknown", "#fff") != "" {
		t.Error("unknown effect should emit nothing")
	}

	neon := EffectCSS("neon-glow", "#e879f9")
	if !strings.Contains(neon, "#e879f960") {
		t.Errorf("neon-glow should derive alpha shades from the accent: %q", neon)
	}

	brutal := EffectCSS("brutalism", "#fff")
	if !strings.Contains(brutal, "4px 4px 0px #000") {
		t.Errorf("brutalism shadow: %q", brutal)
	}
}
