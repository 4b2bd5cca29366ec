package export

import (
	"strings"
	"testing"
)

func TestDetectIcon(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/janedoe", "github"},
		{"https://www.github.com/janedoe", "github"},
		{"https://gist.github.com/janedoe", "github"},
		{"https://x.com/janedoe", "twitter"},
		{"https://youtu.be/dQw4w9WgXcQ", "youtube"},
		{"mailto:jane@example.com", "mail"},
		{"https://ko-fi.com/janedoe", "coffee"},
		{"https://example.com", "link"},
		{"not a url", "link"},
		{"", "link"},
	}
	for _, tt := range tests {
		if got := detectIcon(tt.url); got != tt.want {
			t.Errorf("detectIcon(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDetectIconFirstMatchWins(t *testing.T) {
	// The host matches both the youtube.com and t.me fragments; the
	// earlier table entry must win on every call.
	for i := 0; i < 200; i++ {
		if got := detectIcon("https://t.me.youtube.com/clip"); got != "youtube" {
			t.Fatalf("detectIcon run %d = %q, want %q", i, got, "youtube")
		}
	}
}

func TestSVGIconFallback(t *testing.T) {
	// Keys in the domain table but without a shipped glyph fall back.
	if svgIcon("tiktok") != svgIcons["link"] {
		t.Error("unshipped icon keys should fall back to the link glyph")
	}
	if !strings.Contains(svgIcon("github"), "<svg") {
		t.Error("shipped icons should be inline SVG")
	}
}
