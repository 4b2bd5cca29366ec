// Package embed detects embeddable media URLs (YouTube, Spotify) and
// derives the canonical player URL for them. Both the live preview and
// the static export renderer go through this package so the same source
// URL always yields the same iframe.
package embed

import (
	"fmt"
	"regexp"
)

// Platform identifies the embed provider.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformSpotify Platform = "spotify"
)

// Info describes a detected embed.
type Info struct {
	Platform Platform
	EmbedURL string
	// Kind is "video" for YouTube; "track", "episode", "album" or
	// "playlist" for Spotify.
	Kind string
}

// Every YouTube URL shape carries the same 11-character video id.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?.*v=([\w-]{11})`),
	regexp.MustCompile(`youtu\.be/([\w-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([\w-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([\w-]{11})`),
}

var spotifyPattern = regexp.MustCompile(`open\.spotify\.com/(track|episode|album|playlist)/(\w+)`)

// Detect returns embed info for a URL, or nil when the URL matches no
// known provider pattern. Callers treat nil as "render a standard link".
func Detect(url string) *Info {
	if url == "" {
		return nil
	}

	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return &Info{
				Platform: PlatformYouTube,
				EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s?rel=0", m[1]),
				Kind:     "video",
			}
		}
	}

	if m := spotifyPattern.FindStringSubmatch(url); m != nil {
		return &Info{
			Platform: PlatformSpotify,
			EmbedURL: fmt.Sprintf("https://open.spotify.com/embed/%s/%s?utm_source=generator&theme=0", m[1], m[2]),
			Kind:     m[1],
		}
	}

	return nil
}

// SpotifyHeight returns the iframe pixel height for a Spotify embed kind:
// compact player for tracks and episodes, full player otherwise.
func SpotifyHeight(kind string) int {
	if kind == "track" || kind == "episode" {
		return 152
	}
	return 352
}
