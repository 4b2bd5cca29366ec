// Package theme holds the pure lookup tables shared by the live preview
// and the static export renderer: color presets, background patterns, the
// font catalog and the card effect CSS. Both renderers must resolve these
// identically or the preview drifts from the exported page.
package theme

// Colors are the five page colors every preset defines.
type Colors struct {
	Background     string
	CardBackground string
	Text           string
	Accent         string
	LinkHover      string
}

// ThemePreset is a named, fixed color scheme.
type ThemePreset struct {
	ID          string
	Name        string
	Colors      Colors
	Font        string
	ButtonStyle string
}

var presets = []ThemePreset{
	{
		ID:   "default",
		Name: "Clean Slate",
		Colors: Colors{
			Background:     "#ffffff",
			CardBackground: "#f8fafc",
			Text:           "#0f172a",
			Accent:         "#6d28d9",
			LinkHover:      "#7c3aed",
		},
		Font:        "Inter",
		ButtonStyle: "rounded",
	},
	{
		ID:   "midnight",
		Name: "Midnight Violet",
		Colors: Colors{
			Background:     "#0c0a1a",
			CardBackground: "#15132b",
			Text:           "#e2e8f0",
			Accent:         "#a78bfa",
			LinkHover:      "#c4b5fd",
		},
		Font:        "Inter",
		ButtonStyle: "rounded",
	},
	{
		ID:   "ocean",
		Name: "Deep Ocean",
		Colors: Colors{
			Background:     "#0c1222",
			CardBackground: "#132035",
			Text:           "#e0f2fe",
			Accent:         "#38bdf8",
			LinkHover:      "#7dd3fc",
		},
		Font:        "Inter",
		ButtonStyle: "pill",
	},
	{
		ID:   "forest",
		Name: "Emerald Forest",
		Colors: Colors{
			Background:     "#052e16",
			CardBackground: "#0d3b21",
			Text:           "#dcfce7",
			Accent:         "#34d399",
			LinkHover:      "#6ee7b7",
		},
		Font:        "Inter",
		ButtonStyle: "rounded",
	},
	{
		ID:   "sunset",
		Name: "Golden Sunset",
		Colors: Colors{
			Background:     "#1a0a0a",
			CardBackground: "#2a1515",
			Text:           "#fef2f2",
			Accent:         "#f97316",
			LinkHover:      "#fb923c",
		},
		Font:        "Inter",
		ButtonStyle: "pill",
	},
	{
		ID:   "neon",
		Name: "Neon Nights",
		Colors: Colors{
			Background:     "#0a0a0f",
			CardBackground: "#121220",
			Text:           "#f0f0ff",
			Accent:         "#e879f9",
			LinkHover:      "#f0abfc",
		},
		Font:        "Inter",
		ButtonStyle: "outline",
	},
	{
		ID:   "minimal",
		Name: "Minimal Light",
		Colors: Colors{
			Background:     "#fafafa",
			CardBackground: "#ffffff",
			Text:           "#171717",
			Accent:         "#171717",
			LinkHover:      "#404040",
		},
		Font:        "Inter",
		ButtonStyle: "square",
	},
}

// Presets returns all named presets in display order.
func Presets() []ThemePreset {
	return presets
}

// Preset returns the preset with the given id, falling back to the first
// (default) preset for unknown ids.
func Preset(id string) ThemePreset {
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return presets[0]
}

// ButtonRadius maps a button style to its border radius. Outline is a
// border treatment and shares the rounded radius.
func ButtonRadius(style string) string {
	switch style {
	case "pill":
		return "9999px"
	case "square":
		return "8px"
	default:
		return "12px"
	}
}
