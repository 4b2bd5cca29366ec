package theme

import (
	"fmt"
	"strings"
)

// FontOption is one entry in the curated Google Fonts catalog.
type FontOption struct {
	Family   string
	Category string // sans-serif, serif, monospace, display
	Weights  []int
}

var defaultWeights = []int{400, 500, 600, 700}

var fontCatalog = []FontOption{
	{Family: "Inter", Category: "sans-serif", Weights: defaultWeights},
	{Family: "Poppins", Category: "sans-serif", Weights: defaultWeights},
	{Family: "Space Grotesk", Category: "sans-serif", Weights: defaultWeights},
	{Family: "Playfair Display", Category: "serif", Weights: defaultWeights},
	{Family: "Lora", Category: "serif", Weights: defaultWeights},
	{Family: "Roboto Mono", Category: "monospace", Weights: defaultWeights},
	{Family: "Outfit", Category: "sans-serif", Weights: defaultWeights},
	{Family: "DM Sans", Category: "sans-serif", Weights: defaultWeights},
	{Family: "Orbitron", Category: "display", Weights: defaultWeights},
	{Family: "Space Mono", Category: "monospace", Weights: []int{400, 700}},
	{Family: "Rajdhani", Category: "display", Weights: defaultWeights},
}

// Fonts returns the catalog in display order.
func Fonts() []FontOption {
	return fontCatalog
}

func lookupFont(family string) (FontOption, bool) {
	for _, f := range fontCatalog {
		if f.Family == family {
			return f, true
		}
	}
	return FontOption{}, false
}

// GoogleFontsURL builds the stylesheet URL for a font family. Families
// outside the catalog get the default weight set so the exported page
// still loads something sensible.
func GoogleFontsURL(family string) string {
	if family == "" {
		family = "Inter"
	}
	weights := defaultWeights
	if f, ok := lookupFont(family); ok {
		weights = f.Weights
	}
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprint(w)
	}
	encoded := strings.ReplaceAll(family, " ", "+")
	return fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:wght@%s&display=swap", encoded, strings.Join(parts, ";"))
}

// FontStack returns the CSS font-family stack with a category-matched
// fallback. Unknown families get the system sans-serif stack.
func FontStack(family string) string {
	if family == "" {
		family = "Inter"
	}
	f, _ := lookupFont(family)
	switch f.Category {
	case "serif":
		return fmt.Sprintf("'%s', Georgia, 'Times New Roman', serif", family)
	case "monospace":
		return fmt.Sprintf("'%s', 'Fira Code', 'Courier New', monospace", family)
	case "display":
		return fmt.Sprintf("'%s', 'Impact', system-ui, sans-serif", family)
	default:
		return fmt.Sprintf("'%s', system-ui, -apple-system, sans-serif", family)
	}
}
