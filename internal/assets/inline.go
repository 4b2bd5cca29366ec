// Package assets inlines local images into the profile document as data
// URLs, so the exported page stays a single self-contained file. Images
// are downscaled and re-encoded to keep the document small.
package assets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"linkforge/internal/profile"
)

// Options control the size/quality trade-off.
type Options struct {
	MaxDimension int // longest side after downscaling, pixels
	TargetBytes  int // encoded size to aim for; best effort, not a hard cap
}

// DefaultOptions matches what the in-browser editor produces.
func DefaultOptions() Options {
	return Options{MaxDimension: 400, TargetBytes: 150 * 1024}
}

// qualities is the ladder tried until the encoded image fits TargetBytes.
var qualities = []int{80, 65, 50, 40, 30}

// InlineProfile replaces every local image reference in the document with
// a data URL: avatar, favicon, og:image, donation QR codes and portfolio
// images. Portfolio srcs may be globs and expand to one entry per match.
// Returns the number of images inlined.
func InlineProfile(cfg *profile.ProfileConfig, opts Options) (int, error) {
	count := 0

	inline := func(src *string) error {
		if !isLocalPath(*src) {
			return nil
		}
		dataURL, err := EncodeDataURL(*src, opts)
		if err != nil {
			return err
		}
		*src = dataURL
		count++
		return nil
	}

	if err := inline(&cfg.Profile.Avatar); err != nil {
		return count, fmt.Errorf("avatar: %w", err)
	}
	if err := inline(&cfg.Seo.Favicon); err != nil {
		return count, fmt.Errorf("favicon: %w", err)
	}
	if err := inline(&cfg.Seo.OgImage); err != nil {
		return count, fmt.Errorf("og image: %w", err)
	}

	for i := range cfg.Links {
		link := &cfg.Links[i]

		if err := inline(&link.QrisImage); err != nil {
			return count, fmt.Errorf("link %s qris image: %w", link.ID, err)
		}

		if len(link.PortfolioImages) > 0 {
			expanded, err := ExpandGlobs(link.PortfolioImages)
			if err != nil {
				return count, fmt.Errorf("link %s portfolio: %w", link.ID, err)
			}
			for j := range expanded {
				if err := inline(&expanded[j].Src); err != nil {
					return count, fmt.Errorf("link %s portfolio image %s: %w", link.ID, expanded[j].Src, err)
				}
			}
			link.PortfolioImages = expanded
		}
	}

	return count, nil
}

// ExpandGlobs resolves portfolio srcs that contain glob metacharacters
// into one entry per matching file, keeping the shared caption. Plain
// paths and already-inlined entries pass through unchanged.
func ExpandGlobs(images []profile.PortfolioImage) ([]profile.PortfolioImage, error) {
	out := make([]profile.PortfolioImage, 0, len(images))
	for _, img := range images {
		if !isLocalPath(img.Src) || !isGlob(img.Src) {
			out = append(out, img)
			continue
		}
		matches, err := doublestar.FilepathGlob(img.Src)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", img.Src, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", img.Src)
		}
		for _, m := range matches {
			out = append(out, profile.PortfolioImage{Src: m, Caption: img.Caption})
		}
	}
	return out, nil
}

// EncodeDataURL loads, downscales and re-encodes one image as a data URL.
// WebP is tried first down the quality ladder; JPEG is the fallback for
// the rare decoder that cannot produce WebP output.
func EncodeDataURL(path string, opts Options) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
		img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
	}

	data, mime, err := encodeToTarget(img, opts.TargetBytes)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// encodeToTarget walks the quality ladder and returns the first encoding
// at or under the target, or the smallest one produced.
func encodeToTarget(img image.Image, target int) ([]byte, string, error) {
	var best []byte
	bestMime := ""

	for _, q := range qualities {
		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(q)}); err != nil {
			break
		}
		if best == nil || buf.Len() < len(best) {
			best = append([]byte(nil), buf.Bytes()...)
			bestMime = "image/webp"
		}
		if buf.Len() <= target {
			return best, bestMime, nil
		}
	}

	for _, q := range qualities {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return nil, "", fmt.Errorf("jpeg encode: %w", err)
		}
		if best == nil || buf.Len() < len(best) {
			best = append([]byte(nil), buf.Bytes()...)
			bestMime = "image/jpeg"
		}
		if buf.Len() <= target {
			return best, bestMime, nil
		}
	}

	if best == nil {
		return nil, "", fmt.Errorf("no encoder produced output")
	}
	return best, bestMime, nil
}

// isLocalPath reports whether src points at a file on disk rather than a
// remote URL or an already-inlined data URL.
func isLocalPath(src string) bool {
	if src == "" {
		return false
	}
	for _, prefix := range []string{"data:", "http://", "https://", "//"} {
		if strings.HasPrefix(src, prefix) {
			return false
		}
	}
	return true
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
