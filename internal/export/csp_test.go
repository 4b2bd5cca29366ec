package export

import (
	"strings"
	"testing"

	"linkforge/internal/profile"
)

func cspOf(t *testing.T, cfg *profile.ProfileConfig) string {
	t.Helper()
	html, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	start := strings.Index(html, `http-equiv="Content-Security-Policy" content="`)
	if start < 0 {
		t.Fatal("no CSP meta in output")
	}
	rest := html[start+len(`http-equiv="Content-Security-Policy" content="`):]
	end := strings.Index(rest, `"`)
	return rest[:end]
}

func TestCSPMinimalPage(t *testing.T) {
	csp := cspOf(t, testConfig())

	if !strings.Contains(csp, "frame-src 'none'") {
		t.Errorf("no embeds, frame-src should be 'none': %q", csp)
	}
	if strings.Contains(csp, "script-src 'self' 'unsafe-inline'") {
		t.Errorf("no scripts, script-src should not allow inline: %q", csp)
	}
	if strings.Contains(csp, "form-action") {
		t.Errorf("no forms, no form-action directive: %q", csp)
	}
	if strings.Contains(csp, "umami") {
		t.Errorf("no analytics, no umami origin: %q", csp)
	}
}

func TestCSPFollowsUsage(t *testing.T) {
	cfg := testConfig()
	cfg.Links[0].IsEmbed = true
	cfg.Links[0].URL = "https://youtu.be/dQw4w9WgXcQ"
	cfg.Settings.AnalyticsID = "site-1"

	csp := cspOf(t, cfg)

	if !strings.Contains(csp, "frame-src https://www.youtube.com") {
		t.Errorf("youtube embed should allow its frame origin: %q", csp)
	}
	if strings.Contains(csp, "open.spotify.com") {
		t.Errorf("no spotify embed, no spotify origin: %q", csp)
	}
	if !strings.Contains(csp, "https://cloud.umami.is") {
		t.Errorf("analytics should allow the umami origin: %q", csp)
	}
}

func TestCSPInlineScriptsAllowedWhenPresent(t *testing.T) {
	cfg := testConfig()
	cfg.Links[0].ValidFrom = "2026-09-01T00:00:00Z"

	csp := cspOf(t, cfg)
	if !strings.Contains(csp, "unsafe-inline") {
		t.Errorf("scheduled links ship a script; inline must be allowed: %q", csp)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"b", "a", "b", "c", "a"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("dedupe length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if dedupe(nil) != nil {
		t.Error("dedupe(nil) should be nil")
	}
}
