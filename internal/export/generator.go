// Package export is the static renderer: it turns a profile document into
// a single self-contained HTML page. Everything the live preview does with
// a framework — scheduling, locked links, embeds, action forms, countdown
// timers, lightboxes — is re-derived here as plain markup, inline CSS and
// small scoped inline scripts, so the artifact works from a file:// URL
// with no build step and no network dependency beyond web fonts.
package export

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"linkforge/internal/profile"
	"linkforge/internal/theme"
)

// Generate renders the document for a config snapshot. It is pure and
// deterministic: the only time-dependent behavior lives in the generated
// inline scripts, which read the viewer's clock at view time. The config
// is never mutated.
func Generate(cfg *profile.ProfileConfig) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("export: nil config")
	}

	r := &renderer{cfg: cfg}
	return r.render(), nil
}

// renderer accumulates per-block scripts and usage flags while walking the
// link list, so the head (CSP, conditional CSS) can be built from what the
// body actually contains.
type renderer struct {
	cfg     *profile.ProfileConfig
	scripts []string
	use     usage
}

// usage records which origins and block features the rendered body
// exercises. The CSP and the conditional CSS blocks are derived from it:
// an origin never used must not be allowed.
type usage struct {
	youtube      bool
	spotify      bool
	pdf          bool
	pdfOrigins   []string
	formOrigins  []string
	schedule     bool
	header       bool
	embedBlock   bool
	locked       bool
	action       bool
	donation     bool
	portfolio    bool
	countdown    bool
	leadForm     bool
	testimonials bool
	tabs         bool
	contact      bool
}

func (r *renderer) render() string {
	cfg := r.cfg

	links := enabledLinks(cfg.Links)
	blocksHTML := r.renderBody(links)

	head := r.renderHead()
	css := r.renderCSS()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, "<html lang=%q>\n", cfg.Settings.Locale)
	b.WriteString("<head>\n")
	b.WriteString(head)
	b.WriteString("<style>\n")
	b.WriteString(css)
	b.WriteString("</style>\n")
	if custom := cfg.Settings.CustomCSS; custom != "" {
		b.WriteString("<style>\n")
		b.WriteString(custom)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(`<main class="container" id="linkforge-root">` + "\n")
	b.WriteString(blocksHTML)
	b.WriteString("</main>\n")
	for _, s := range r.scripts {
		b.WriteString("<script>")
		b.WriteString(s)
		b.WriteString("</script>\n")
	}
	if r.use.schedule {
		b.WriteString("<script>")
		b.WriteString(scheduleScript)
		b.WriteString("</script>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// enabledLinks filters to enabled links sorted ascending by order.
// Disabled links are excluded from the output entirely, not merely hidden.
func enabledLinks(links []profile.LinkItem) []profile.LinkItem {
	out := make([]profile.LinkItem, 0, len(links))
	for _, l := range links {
		if l.IsVisible() {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// renderBody builds everything inside the container: identity header,
// link blocks (flat or tabbed), testimonials and footer.
func (r *renderer) renderBody(links []profile.LinkItem) string {
	cfg := r.cfg
	var b strings.Builder

	b.WriteString(r.renderAvatar())
	fmt.Fprintf(&b, `<h1 class="name">%s</h1>`+"\n", escapeHTML(orDefault(cfg.Profile.Name, "Your Name")))

	if cfg.Profile.Location != "" {
		fmt.Fprintf(&b, `<p class="location">%s %s</p>`+"\n", locationPin, escapeHTML(cfg.Profile.Location))
	}

	fmt.Fprintf(&b, `<p class="bio">%s</p>`+"\n", escapeHTML(orDefault(cfg.Profile.Bio, "Welcome to my link page")))

	if cfg.Profile.HasContact() {
		r.use.contact = true
		b.WriteString(r.renderSaveContact())
	}

	if len(cfg.Tabs) > 0 {
		r.use.tabs = true
		b.WriteString(r.renderTabs(links))
	} else {
		b.WriteString(`<div class="links">` + "\n")
		for _, l := range links {
			b.WriteString(r.renderBlock(l))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(r.renderTestimonials())

	if cfg.Settings.ShowFooter {
		fmt.Fprintf(&b, `<footer class="footer">%s</footer>`+"\n", escapeHTML(cfg.Settings.FooterText))
	}

	return b.String()
}

func (r *renderer) renderAvatar() string {
	p := r.cfg.Profile
	accent := r.cfg.Theme.Colors.Accent
	if p.Avatar != "" {
		return fmt.Sprintf(`<img src="%s" alt="%s" class="avatar" style="border-color: %s;" />`+"\n",
			escapeHTML(p.Avatar), escapeHTML(p.Name), escapeHTML(accent))
	}
	return fmt.Sprintf(`<div class="avatar avatar--fallback" style="background: %[1]s22; color: %[1]s; border: 2px solid %[1]s;">%[2]s</div>`+"\n",
		escapeHTML(accent), escapeHTML(initials(p.Name)))
}

// renderSaveContact embeds the vCard as a data URL so the contact download
// works offline with no script.
func (r *renderer) renderSaveContact() string {
	p := r.cfg.Profile
	vcf := p.VCard("")
	filename := orDefault(p.Username, "contact") + ".vcf"
	href := "data:text/vcard;charset=utf-8," + url.PathEscape(vcf)
	return fmt.Sprintf(`<a class="save-contact" href="%s" download="%s">%s Save contact</a>`+"\n",
		escapeHTML(href), escapeHTML(filename), contactGlyph)
}

// renderTabs renders the CSS-only tab bar: one radio per tab (first
// checked), labels, then one panel per tab. Membership is strict — a link
// referenced by no tab is not rendered anywhere.
func (r *renderer) renderTabs(links []profile.LinkItem) string {
	byID := make(map[string]profile.LinkItem, len(links))
	for _, l := range links {
		byID[l.ID] = l
	}

	var b strings.Builder
	b.WriteString(`<div class="tabbed">` + "\n")
	for i, tab := range r.cfg.Tabs {
		checked := ""
		if i == 0 {
			checked = " checked"
		}
		fmt.Fprintf(&b, `<input type="radio" name="lf-tab" id="tab-%s" class="tab-radio"%s>`+"\n", escapeHTML(tab.ID), checked)
	}
	b.WriteString(`<div class="tab-bar">` + "\n")
	for _, tab := range r.cfg.Tabs {
		fmt.Fprintf(&b, `<label for="tab-%s">%s</label>`+"\n", escapeHTML(tab.ID), escapeHTML(tab.Label))
	}
	b.WriteString("</div>\n")
	for _, tab := range r.cfg.Tabs {
		fmt.Fprintf(&b, `<div class="links tab-panel" id="panel-%s">`+"\n", escapeHTML(tab.ID))
		for _, id := range tab.LinkIDs {
			if l, ok := byID[id]; ok {
				b.WriteString(r.renderBlock(l))
			}
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func (r *renderer) renderTestimonials() string {
	var valid []profile.Testimonial
	for _, t := range r.cfg.Testimonials {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return ""
	}
	r.use.testimonials = true

	var b strings.Builder
	b.WriteString(`<section class="testimonials">` + "\n")
	for _, t := range valid {
		rating := t.Rating
		if rating < 1 {
			rating = 1
		} else if rating > 5 {
			rating = 5
		}
		stars := strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
		fmt.Fprintf(&b, `<div class="testimonial"><div class="stars">%s</div><p class="t-text">%s</p><p class="t-name">&mdash; %s</p></div>`+"\n",
			stars, escapeHTML(t.Text), escapeHTML(t.Name))
	}
	b.WriteString("</section>\n")
	return b.String()
}

func (r *renderer) renderHead() string {
	cfg := r.cfg
	var b strings.Builder

	title := cfg.Seo.Title
	if title == "" {
		title = orDefault(cfg.Profile.Name, "Your Name") + " — Links"
	}
	description := cfg.Seo.Description
	if description == "" {
		description = orDefault(cfg.Profile.Bio, "All my links in one place.")
	}

	b.WriteString("<meta charset=\"UTF-8\" />\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", escapeHTML(title))
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\" />\n", escapeHTML(description))

	b.WriteString("<meta property=\"og:type\" content=\"website\" />\n")
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\" />\n", escapeHTML(title))
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\" />\n", escapeHTML(description))
	if cfg.Seo.OgImage != "" {
		fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\" />\n", escapeHTML(cfg.Seo.OgImage))
	}
	b.WriteString("<meta name=\"twitter:card\" content=\"summary_large_image\" />\n")
	fmt.Fprintf(&b, "<meta name=\"twitter:title\" content=\"%s\" />\n", escapeHTML(title))
	fmt.Fprintf(&b, "<meta name=\"twitter:description\" content=\"%s\" />\n", escapeHTML(description))
	if cfg.Seo.OgImage != "" {
		fmt.Fprintf(&b, "<meta name=\"twitter:image\" content=\"%s\" />\n", escapeHTML(cfg.Seo.OgImage))
	}
	if cfg.Seo.Favicon != "" {
		fmt.Fprintf(&b, "<link rel=\"icon\" href=\"%s\" />\n", escapeHTML(cfg.Seo.Favicon))
	}

	fmt.Fprintf(&b, "<meta http-equiv=\"Content-Security-Policy\" content=\"%s\" />\n", r.buildCSP())

	b.WriteString("<link rel=\"preconnect\" href=\"https://fonts.googleapis.com\" />\n")
	b.WriteString("<link rel=\"preconnect\" href=\"https://fonts.gstatic.com\" crossorigin />\n")
	fmt.Fprintf(&b, "<link href=\"%s\" rel=\"stylesheet\" />\n", escapeHTML(theme.GoogleFontsURL(cfg.Theme.Font)))

	if cfg.Settings.AnalyticsID != "" {
		fmt.Fprintf(&b, "<script defer src=\"https://cloud.umami.is/script.js\" data-website-id=\"%s\"></script>\n",
			escapeHTML(cfg.Settings.AnalyticsID))
	}

	return b.String()
}

const locationPin = `<svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/></svg>`

const contactGlyph = `<svg width="14" height="14" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/></svg>`

// escapeHTML escapes the five HTML-significant characters for both text
// and attribute positions. Every user-supplied string goes through it;
// the only exception is the custom CSS block, which is injected verbatim
// into its own style element.
func escapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return r.Replace(s)
}

// sanitizeURL drops URLs outside the http/https/mailto/tel schemes, so a
// javascript: URL in an imported config can never become a live href.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https", "mailto", "tel":
		return raw
	default:
		return ""
	}
}

// initials builds the avatar fallback: first letter of up to two words.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		out = append(out, runes[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
