package export

import (
	"fmt"
	"strings"

	"linkforge/internal/theme"
)

// renderCSS builds the single style block for the document: base layout,
// theme-derived values, then CSS only for the block types the body
// actually rendered, then the theme-effect overrides, then the user's
// custom CSS verbatim in its own section. Must run after the body has
// been rendered.
func (r *renderer) renderCSS() string {
	t := r.cfg.Theme
	pattern := theme.ResolvePattern(t.BackgroundPattern, t.Colors.Background, t.Colors.Accent)

	var b strings.Builder

	b.WriteString("*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }\n\n")

	fmt.Fprintf(&b, `body {
  font-family: %s;
  background: %s;
  %scolor: %s;
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  align-items: center;
  padding: 3rem 1rem;
  -webkit-font-smoothing: antialiased;
}
`, theme.FontStack(t.Font), pattern.Background, patternExtra(pattern), t.Colors.Text)

	if t.BackgroundPattern == "gradient" {
		b.WriteString(theme.GradientKeyframes + "\n")
	}

	b.WriteString(`
.container {
  width: 100%;
  max-width: 28rem;
  display: flex;
  flex-direction: column;
  align-items: center;
`)
	b.WriteString(containerAnimation(t.Animation))
	b.WriteString("}\n")
	b.WriteString(animationKeyframes(t.Animation))

	fmt.Fprintf(&b, `
.avatar {
  width: 6rem;
  height: 6rem;
  border-radius: 50%%;
  object-fit: cover;
  border: 2px solid;
  margin-bottom: 1rem;
  box-shadow: 0 4px 20px rgba(0,0,0,0.15);
}
.avatar--fallback {
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 1.5rem;
  font-weight: 700;
}
.name { font-size: 1.5rem; font-weight: 700; text-align: center; }
.location { display: flex; align-items: center; gap: 4px; font-size: 0.8rem; opacity: 0.6; margin-top: 0.25rem; }
.bio { font-size: 0.875rem; text-align: center; opacity: 0.75; margin-top: 0.5rem; max-width: 20rem; line-height: 1.6; }
.links { width: 100%%; margin-top: 2rem; display: flex; flex-direction: column; gap: 0.75rem; }

.link-card {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  width: 100%%;
  padding: 0.875rem 1.25rem;
  font-size: 0.875rem;
  font-weight: 500;
  font-family: inherit;
  text-decoration: none;
  cursor: pointer;
  transition: all 0.2s ease;
}
.link-card:hover {
  transform: scale(1.02);
  border-color: %[1]s !important;
  box-shadow: 0 4px 12px %[1]s20;
}
.link-card:active { transform: scale(0.98); }
.link-icon { display: flex; width: 18px; height: 18px; flex-shrink: 0; }
.link-icon svg { width: 100%%; height: 100%%; }
.link-title { flex: 1; text-align: center; }
.link-spacer { width: 18px; flex-shrink: 0; }

.footer { margin-top: 3rem; font-size: 0.75rem; opacity: 0.4; }
`, t.Colors.Accent)

	if r.use.contact {
		fmt.Fprintf(&b, `
.save-contact {
  display: inline-flex;
  align-items: center;
  gap: 6px;
  margin-top: 0.75rem;
  padding: 0.375rem 0.875rem;
  font-size: 0.75rem;
  font-weight: 500;
  color: %[1]s;
  border: 1px solid %[1]s;
  border-radius: 9999px;
  text-decoration: none;
}
.save-contact:hover { background: %[1]s15; }
`, t.Colors.Accent)
	}

	if r.use.header {
		fmt.Fprintf(&b, `
.section-header { width: 100%%; margin-top: 0.5rem; text-align: center; }
.section-title { font-size: 0.8rem; font-weight: 600; text-transform: uppercase; letter-spacing: 0.08em; opacity: 0.7; }
.section-underline { display: block; width: 2rem; height: 2px; margin: 0.375rem auto 0; background: %s; border-radius: 1px; }
`, t.Colors.Accent)
	}

	if r.use.embedBlock {
		b.WriteString(`
.embed { width: 100%; }
.embed iframe { width: 100%; border: 0; border-radius: 12px; }
.embed--video { position: relative; width: 100%; aspect-ratio: 16 / 9; }
.embed--video iframe { position: absolute; inset: 0; height: 100%; }
`)
	}

	if r.use.pdf {
		b.WriteString(`
.pdf-embed { width: 100%; }
.pdf-embed iframe { width: 100%; border: 0; border-radius: 12px; background: #fff; }
`)
	}

	if r.use.action {
		b.WriteString(`
.action-card { width: 100%; display: flex; flex-direction: column; gap: 0.5rem; }
.action-toggle { display: none; }
.action-header { justify-content: space-between; }
.action-chevron { flex-shrink: 0; transition: transform 0.2s ease; }
.action-toggle:checked ~ .action-header .action-chevron { transform: rotate(180deg); }
.action-form { display: none; flex-direction: column; gap: 0.5rem; padding: 0.25rem 0; }
.action-toggle:checked ~ .action-form { display: flex; }
.action-label { display: flex; flex-direction: column; gap: 0.25rem; font-size: 0.75rem; opacity: 0.85; }
`)
		fmt.Fprintf(&b, `.action-form input, .action-form select {
  padding: 0.625rem 0.875rem;
  font-size: 0.875rem;
  font-family: inherit;
  color: inherit;
  background: %s;
  border: 1px solid %s40;
  border-radius: 8px;
}
.action-send { justify-content: center; }
`, t.Colors.CardBackground, t.Colors.Accent)
	}

	if r.use.donation {
		fmt.Fprintf(&b, `
.donation-card {
  width: 100%%;
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 0.5rem;
  padding: 1rem;
  background: %s;
  border-radius: 12px;
}
.donation-badge {
  font-size: 0.7rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.06em;
  color: %s;
}
.donation-cta { font-size: 0.8rem; opacity: 0.8; text-align: center; }
.donation-qr { width: 11rem; height: 11rem; object-fit: contain; border-radius: 8px; background: #fff; padding: 0.5rem; }
.donation-link { justify-content: center; }
`, t.Colors.CardBackground, t.Colors.Accent)
	}

	if r.use.portfolio {
		b.WriteString(`
.portfolio { width: 100%; }
.portfolio img { width: 100%; display: block; border-radius: 8px; }
.lightbox {
  display: none;
  position: fixed;
  inset: 0;
  z-index: 50;
  background: rgba(0,0,0,0.9);
  align-items: center;
  justify-content: center;
  padding: 1rem;
}
.lightbox:target { display: flex; }
.lightbox figure { max-width: 90vw; max-height: 85vh; text-align: center; }
.lightbox figure img { max-width: 100%; max-height: 80vh; object-fit: contain; border-radius: 8px; }
.lb-caption { margin-top: 0.5rem; font-size: 0.8rem; color: rgba(255,255,255,0.9); }
.lb-close, .lb-prev, .lb-next {
  position: absolute;
  display: flex;
  align-items: center;
  justify-content: center;
  width: 2.5rem;
  height: 2.5rem;
  border-radius: 50%;
  background: rgba(255,255,255,0.1);
  color: #fff;
  font-size: 1.5rem;
  text-decoration: none;
}
.lb-close { top: 1rem; right: 1rem; }
.lb-prev { left: 1rem; top: 50%; transform: translateY(-50%); }
.lb-next { right: 1rem; top: 50%; transform: translateY(-50%); }
`)
	}

	if r.use.countdown {
		b.WriteString(countdownCSS(t.Colors.CardBackground, t.Colors.Accent))
	}

	if r.use.leadForm {
		fmt.Fprintf(&b, `
.lead-form { width: 100%%; display: flex; flex-direction: column; gap: 0.5rem; }
.lead-title { font-size: 0.875rem; font-weight: 600; text-align: center; }
.lead-form input, .lead-form textarea {
  padding: 0.625rem 0.875rem;
  font-size: 0.875rem;
  font-family: inherit;
  color: inherit;
  background: %s;
  border: 1px solid %s40;
  border-radius: 8px;
  resize: vertical;
}
.lead-submit { justify-content: center; }
`, t.Colors.CardBackground, t.Colors.Accent)
	}

	if r.use.locked {
		b.WriteString("\n.locked-link { text-align: left; }\n")
	}

	if r.use.testimonials {
		fmt.Fprintf(&b, `
.testimonials { width: 100%%; margin-top: 2rem; display: flex; flex-direction: column; gap: 0.75rem; }
.testimonial { padding: 1rem; background: %s; border-radius: 12px; }
.stars { color: %s; font-size: 0.8rem; letter-spacing: 2px; }
.t-text { font-size: 0.85rem; line-height: 1.5; margin-top: 0.375rem; }
.t-name { font-size: 0.75rem; opacity: 0.6; margin-top: 0.375rem; }
`, t.Colors.CardBackground, t.Colors.Accent)
	}

	if r.use.tabs {
		b.WriteString(r.tabsCSS())
	}

	if effect := theme.EffectCSS(t.ThemeEffect, t.Colors.Accent); effect != "" {
		b.WriteString("\n/* theme effect */\n")
		b.WriteString(effect)
		b.WriteString("\n")
	}

	return b.String()
}

func patternExtra(p theme.Pattern) string {
	if p.Extra == "" {
		return ""
	}
	return p.Extra + "\n  "
}

func containerAnimation(animation string) string {
	switch animation {
	case "none":
		return ""
	case "slide-in":
		return "  animation: slideIn 0.6s ease-out;\n"
	case "scale":
		return "  animation: scaleIn 0.6s ease-out;\n"
	default:
		return "  animation: fadeIn 0.6s ease-out;\n"
	}
}

func animationKeyframes(animation string) string {
	switch animation {
	case "none":
		return ""
	case "slide-in":
		return `@keyframes slideIn {
  from { opacity: 0; transform: translateX(-16px); }
  to { opacity: 1; transform: translateX(0); }
}
`
	case "scale":
		return `@keyframes scaleIn {
  from { opacity: 0; transform: scale(0.95); }
  to { opacity: 1; transform: scale(1); }
}
`
	default:
		return `@keyframes fadeIn {
  from { opacity: 0; transform: translateY(12px); }
  to { opacity: 1; transform: translateY(0); }
}
`
	}
}

// tabsCSS emits the per-tab :checked selectors: each radio shows its own
// panel and highlights its own label.
func (r *renderer) tabsCSS() string {
	var b strings.Builder
	accent := r.cfg.Theme.Colors.Accent
	fmt.Fprintf(&b, `
.tabbed { width: 100%%; margin-top: 2rem; }
.tab-radio { display: none; }
.tab-bar { display: flex; justify-content: center; gap: 0.5rem; margin-bottom: 1rem; }
.tab-bar label {
  padding: 0.375rem 1rem;
  font-size: 0.8rem;
  font-weight: 500;
  border-radius: 9999px;
  border: 1px solid %s40;
  cursor: pointer;
  opacity: 0.7;
}
.tab-panel { display: none; margin-top: 0; }
`, accent)
	for _, tab := range r.cfg.Tabs {
		id := escapeHTML(tab.ID)
		fmt.Fprintf(&b, "#tab-%s:checked ~ #panel-%s { display: flex; }\n", id, id)
		fmt.Fprintf(&b, "#tab-%[1]s:checked ~ .tab-bar label[for=\"tab-%[1]s\"] { background: %[2]s; border-color: %[2]s; color: %[3]s; opacity: 1; }\n",
			id, accent, r.cfg.Theme.Colors.Background)
	}
	return b.String()
}

func countdownCSS(cardBg, accent string) string {
	return fmt.Sprintf(`
.countdown { width: 100%%; text-align: center; }
.cd-title { font-size: 0.8rem; font-weight: 600; text-transform: uppercase; letter-spacing: 0.06em; opacity: 0.7; margin-bottom: 0.5rem; }
.cd-grid { display: flex; justify-content: center; gap: 0.5rem; }
.cd-cell { display: flex; flex-direction: column; align-items: center; min-width: 3.25rem; padding: 0.5rem 0.25rem; }
.cd-num { font-size: 1.25rem; font-weight: 700; font-variant-numeric: tabular-nums; }
.cd-unit { font-size: 0.6rem; text-transform: uppercase; letter-spacing: 0.05em; opacity: 0.6; margin-top: 0.125rem; }
.cd-done { font-size: 0.875rem; font-weight: 600; }
.countdown--card .cd-cell { background: %[1]s; border-radius: 8px; }
.countdown--flip .cd-cell { background: %[1]s; border-radius: 6px; box-shadow: inset 0 -1px 0 %[2]s40; position: relative; }
.countdown--flip .cd-cell::after { content: ""; position: absolute; left: 0; right: 0; top: 50%%; height: 1px; background: %[2]s20; }
.countdown--minimal .cd-cell { background: transparent; }
`, cardBg, accent)
}
