package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"linkforge/internal/profile"
)

// writePNG writes a solid-color test image.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
}

func TestInlineProfileAvatar(t *testing.T) {
	dir := t.TempDir()
	avatar := filepath.Join(dir, "avatar.png")
	writePNG(t, avatar, 800, 600)

	cfg := profile.DefaultConfig()
	cfg.Profile.Avatar = avatar

	n, err := InlineProfile(cfg, DefaultOptions())
	if err != nil {
		t.Fatalf("InlineProfile: %v", err)
	}
	if n != 1 {
		t.Errorf("inlined %d images, want 1", n)
	}
	if !strings.HasPrefix(cfg.Profile.Avatar, "data:image/") {
		t.Errorf("avatar should be a data URL, got %.40q", cfg.Profile.Avatar)
	}
}

func TestInlineProfileSkipsRemote(t *testing.T) {
	cfg := profile.DefaultConfig()
	cfg.Profile.Avatar = "https://example.com/me.png"
	cfg.Seo.OgImage = "data:image/png;base64,QUJD"

	n, err := InlineProfile(cfg, DefaultOptions())
	if err != nil {
		t.Fatalf("InlineProfile: %v", err)
	}
	if n != 0 {
		t.Errorf("inlined %d images, want 0", n)
	}
	if cfg.Profile.Avatar != "https://example.com/me.png" {
		t.Error("remote avatar should be untouched")
	}
}

func TestInlineProfilePortfolioGlob(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 100, 100)
	writePNG(t, filepath.Join(dir, "b.png"), 100, 100)

	cfg := profile.DefaultConfig()
	cfg.Links = []profile.LinkItem{{
		ID: "p1", Title: "Work", Type: profile.BlockPortfolio,
		PortfolioImages: []profile.PortfolioImage{
			{Src: filepath.Join(dir, "*.png"), Caption: "Shot"},
		},
		Enabled: true, Order: 0, Target: "_self",
	}}

	n, err := InlineProfile(cfg, DefaultOptions())
	if err != nil {
		t.Fatalf("InlineProfile: %v", err)
	}
	if n != 2 {
		t.Errorf("inlined %d images, want 2", n)
	}
	imgs := cfg.Links[0].PortfolioImages
	if len(imgs) != 2 {
		t.Fatalf("expected glob to expand to 2 entries, got %d", len(imgs))
	}
	for _, img := range imgs {
		if !strings.HasPrefix(img.Src, "data:image/") {
			t.Errorf("expected data URL, got %.40q", img.Src)
		}
		if img.Caption != "Shot" {
			t.Errorf("caption should be kept, got %q", img.Caption)
		}
	}
}

func TestExpandGlobsNoMatches(t *testing.T) {
	_, err := ExpandGlobs([]profile.PortfolioImage{
		{Src: filepath.Join(t.TempDir(), "*.png")},
	})
	if err == nil {
		t.Error("expected error for glob with no matches")
	}
}

func TestEncodeDataURLDownscales(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.png")
	writePNG(t, big, 2000, 1000)

	url, err := EncodeDataURL(big, Options{MaxDimension: 400, TargetBytes: 150 * 1024})
	if err != nil {
		t.Fatalf("EncodeDataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/") || !strings.Contains(url, ";base64,") {
		t.Errorf("malformed data URL: %.60q", url)
	}
	if len(url) > 300*1024 {
		t.Errorf("encoded size %d suspiciously large for a 400px image", len(url))
	}
}

func TestEncodeDataURLMissingFile(t *testing.T) {
	_, err := EncodeDataURL(filepath.Join(t.TempDir(), "nope.png"), DefaultOptions())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsLocalPath(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"assets/me.png", true},
		{"/abs/path.jpg", true},
		{"https://example.com/x.png", false},
		{"http://example.com/x.png", false},
		{"//cdn.example.com/x.png", false},
		{"data:image/png;base64,QUJD", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isLocalPath(tt.src); got != tt.want {
			t.Errorf("isLocalPath(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
