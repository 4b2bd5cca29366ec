package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern describes one background pattern: the CSS background value plus
// any extra declarations (background-size, animation) it needs.
type Pattern struct {
	ID         string
	Label      string
	Background string
	Extra      string
}

// GradientKeyframes must be injected once into any document that uses the
// animated gradient pattern.
const GradientKeyframes = `@keyframes lf-gradient-shift {
  0% { background-position: 0% 50%; }
  50% { background-position: 100% 50%; }
  100% { background-position: 0% 50%; }
}`

// ResolvePattern builds the background CSS for a pattern id from the
// theme's background and accent colors. Unknown ids resolve to a solid
// background.
func ResolvePattern(id, bg, accent string) Pattern {
	switch id {
	case "dots":
		return Pattern{
			ID:         id,
			Label:      "Dots",
			Background: fmt.Sprintf("radial-gradient(circle, %s 1px, transparent 1px), %s", subtle(accent, 0.12), bg),
			Extra:      "background-size: 24px 24px;",
		}
	case "grid":
		line := subtle(accent, 0.08)
		return Pattern{
			ID:         id,
			Label:      "Grid",
			Background: fmt.Sprintf("linear-gradient(%s 1px, transparent 1px), linear-gradient(90deg, %s 1px, transparent 1px), %s", line, line, bg),
			Extra:      "background-size: 32px 32px;",
		}
	case "gradient":
		return Pattern{
			ID:         id,
			Label:      "Gradient",
			Background: fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 50%%, %s 100%%)", subtle(accent, 0.15), bg, subtle(accent, 0.05)),
			Extra:      "background-size: 400% 400%; animation: lf-gradient-shift 8s ease infinite;",
		}
	case "noise":
		c := subtle(accent, 0.06)
		return Pattern{
			ID:         id,
			Label:      "Noise",
			Background: fmt.Sprintf("repeating-linear-gradient(45deg, transparent, transparent 2px, %s 2px, %s 3px), repeating-linear-gradient(-45deg, transparent, transparent 2px, %s 2px, %s 3px), %s", c, c, c, c, bg),
			Extra:      "background-size: 8px 8px;",
		}
	default:
		return Pattern{ID: "none", Label: "Solid", Background: bg}
	}
}

// subtle returns a semi-transparent rgba() form of a #rrggbb color, used
// to keep pattern overlays faint against the page background. Colors that
// do not parse as 6-digit hex pass through with the alpha appended via
// rgb shorthand rules dropped, falling back to the raw color.
func subtle(hex string, opacity float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "#" + hex
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#" + hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(opacity))
}

// trimFloat formats 0.12 as "0.12", not "0.120000".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
