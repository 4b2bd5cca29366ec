package theme

import "fmt"

// EffectCSS returns the style-block overrides a theme effect applies to
// link cards. The same table backs the live preview's inline styles; the
// two must stay visually identical. Unknown or empty ids return "".
func EffectCSS(effect, accent string) string {
	switch effect {
	case "glassmorphism":
		return `
.link-card {
  backdrop-filter: blur(16px) saturate(180%);
  -webkit-backdrop-filter: blur(16px) saturate(180%);
  border: 1px solid rgba(255,255,255,0.15) !important;
  box-shadow: 0 8px 32px rgba(0,0,0,0.2);
}`
	case "brutalism":
		return `
.link-card {
  border: 3px solid #000 !important;
  box-shadow: 4px 4px 0px #000;
  border-radius: 0px !important;
}
.link-card:hover {
  transform: translate(-2px, -2px);
  box-shadow: 6px 6px 0px #000;
}`
	case "neon-glow":
		return fmt.Sprintf(`
.link-card {
  border: 1px solid %[1]s60 !important;
  box-shadow: 0 0 15px %[1]s30, 0 0 30px %[1]s15, inset 0 0 15px %[1]s08;
}
.link-card:hover {
  box-shadow: 0 0 20px %[1]s50, 0 0 40px %[1]s25, inset 0 0 20px %[1]s12;
}`, accent)
	case "paper":
		return `
.link-card {
  border: 1px solid #e8e0d4 !important;
  box-shadow: 2px 2px 8px rgba(139,115,85,0.1);
}`
	case "retrowave":
		return fmt.Sprintf(`
.link-card {
  border-bottom: 2px solid %[1]s !important;
  box-shadow: 0 4px 20px %[1]s25;
  background: linear-gradient(180deg, %[1]s10, transparent) !important;
}`, accent)
	default:
		return ""
	}
}
