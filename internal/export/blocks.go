package export

import (
	"fmt"
	"net/url"
	"strings"

	"linkforge/internal/embed"
	"linkforge/internal/profile"
	"linkforge/internal/theme"
)

// renderBlock dispatches one link to its block generator. Unrecognized
// type values fall back to standard-link rendering; blocks missing their
// required payload degrade to an empty string so one bad block can never
// break the export.
func (r *renderer) renderBlock(l profile.LinkItem) string {
	switch l.EffectiveType() {
	case profile.BlockHeader:
		return r.renderHeader(l)
	case profile.BlockAction:
		return r.renderAction(l)
	case profile.BlockDonation:
		return r.renderDonation(l)
	case profile.BlockPortfolio:
		return r.renderPortfolio(l)
	case profile.BlockCountdown:
		return r.renderCountdown(l)
	case profile.BlockLeadForm:
		return r.renderLeadForm(l)
	default:
		return r.renderLinkVariant(l)
	}
}

// renderLinkVariant handles the plain-link family. The lock check runs
// first so a locked link's plaintext URL can never leak through one of the
// other renderings; the PDF check runs before the embed check.
func (r *renderer) renderLinkVariant(l profile.LinkItem) string {
	if l.IsLocked {
		return r.renderLocked(l)
	}
	if l.IsPdfEmbed {
		return r.renderPDF(l)
	}
	if l.IsEmbed {
		if info := embed.Detect(l.URL); info != nil {
			return r.renderEmbed(l, info)
		}
	}
	return r.renderStandardLink(l)
}

// scheduleAttrs returns the data attributes the page-load script uses to
// apply the visibility window. Attached to the block's root element.
func (r *renderer) scheduleAttrs(l profile.LinkItem) string {
	var b strings.Builder
	if l.ValidFrom != "" {
		fmt.Fprintf(&b, ` data-valid-from="%s"`, escapeHTML(l.ValidFrom))
	}
	if l.ValidUntil != "" {
		fmt.Fprintf(&b, ` data-valid-until="%s"`, escapeHTML(l.ValidUntil))
	}
	if b.Len() > 0 {
		r.use.schedule = true
	}
	return b.String()
}

// cardStyle is the per-card inline style, kept inline (not in the style
// block) so the exported markup matches the live preview's inline styles.
// The result is attribute-escaped so callers can drop it straight into a
// style="" attribute even when the colors bypassed validation.
func (r *renderer) cardStyle() string {
	t := r.cfg.Theme
	radius := theme.ButtonRadius(t.ButtonStyle)
	if t.ButtonStyle == "outline" {
		return escapeHTML(fmt.Sprintf("background: transparent; color: %s; border-radius: %s; border: 1.5px solid %s;",
			t.Colors.Text, radius, t.Colors.Accent))
	}
	return escapeHTML(fmt.Sprintf("background: %s; color: %s; border-radius: %s; border: 1px solid %s;",
		t.Colors.CardBackground, t.Colors.Text, radius, t.Colors.CardBackground))
}

func (r *renderer) renderStandardLink(l profile.LinkItem) string {
	safeURL := sanitizeURL(l.URL)
	if safeURL == "" {
		safeURL = "#"
	}
	rel := ""
	if l.Target == "_blank" {
		rel = ` rel="noopener noreferrer"`
	}
	icon := svgIcon(detectIcon(l.URL))
	return fmt.Sprintf(`<a href="%s" target="%s"%s class="link-card" style="%s"%s><span class="link-icon">%s</span><span class="link-title">%s</span><span class="link-spacer"></span></a>`+"\n",
		escapeHTML(safeURL), escapeHTML(l.Target), rel, r.cardStyle(), r.scheduleAttrs(l), icon, escapeHTML(l.Title))
}

func (r *renderer) renderHeader(l profile.LinkItem) string {
	r.use.header = true
	return fmt.Sprintf(`<div class="section-header"%s><span class="section-title">%s</span><span class="section-underline"></span></div>`+"\n",
		r.scheduleAttrs(l), escapeHTML(l.Title))
}

func (r *renderer) renderEmbed(l profile.LinkItem, info *embed.Info) string {
	r.use.embedBlock = true
	title := escapeHTML(l.Title)
	switch info.Platform {
	case embed.PlatformYouTube:
		r.use.youtube = true
		return fmt.Sprintf(`<div class="embed embed--video"%s><iframe src="%s" title="%s" loading="lazy" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>`+"\n",
			r.scheduleAttrs(l), escapeHTML(info.EmbedURL), title)
	case embed.PlatformSpotify:
		r.use.spotify = true
		return fmt.Sprintf(`<div class="embed"%s><iframe src="%s" title="%s" width="100%%" height="%d" frameborder="0" loading="lazy" allow="autoplay; clipboard-write; encrypted-media; fullscreen; picture-in-picture"></iframe></div>`+"\n",
			r.scheduleAttrs(l), escapeHTML(info.EmbedURL), title, embed.SpotifyHeight(info.Kind))
	default:
		return r.renderStandardLink(l)
	}
}

// isPDFURL is the document-detection heuristic shared with the live
// renderer: the URL path, query and fragment stripped, ends in .pdf.
func isPDFURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
}

func (r *renderer) renderPDF(l profile.LinkItem) string {
	safeURL := sanitizeURL(l.URL)
	if safeURL == "" || !isPDFURL(safeURL) {
		return ""
	}
	r.use.pdf = true
	if u, err := url.Parse(safeURL); err == nil && u.Scheme != "" && u.Host != "" {
		r.use.pdfOrigins = append(r.use.pdfOrigins, u.Scheme+"://"+u.Host)
	}
	return fmt.Sprintf(`<div class="pdf-embed"%s><iframe src="%s" title="%s" width="100%%" height="480" loading="lazy"></iframe></div>`+"\n",
		r.scheduleAttrs(l), escapeHTML(safeURL), escapeHTML(l.Title))
}

// renderLocked emits a button (never an anchor — no href to leak) holding
// the lockbox token, plus the scoped decrypt script. A locked link with no
// token has nothing safe to render and is omitted.
func (r *renderer) renderLocked(l profile.LinkItem) string {
	if l.EncryptedURL == "" {
		return ""
	}
	r.use.locked = true
	domID := "lock-" + l.ID
	r.scripts = append(r.scripts, lockedScript(domID))
	return fmt.Sprintf(`<button type="button" id="%s" class="link-card locked-link" style="%s" data-encrypted="%s" data-target="%s"%s><span class="link-icon">%s</span><span class="link-title">%s</span><span class="link-spacer"></span></button>`+"\n",
		escapeHTML(domID), r.cardStyle(), escapeHTML(l.EncryptedURL), escapeHTML(l.Target), r.scheduleAttrs(l), lockGlyph, escapeHTML(l.Title))
}

const lockGlyph = `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><rect width="18" height="11" x="3" y="11" rx="2" ry="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/></svg>`

func (r *renderer) renderAction(l profile.LinkItem) string {
	a := l.Action
	if a == nil || a.WhatsAppNumber == "" {
		return ""
	}
	r.use.action = true

	domID := "act-" + l.ID
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="action-card"%s>`+"\n", r.scheduleAttrs(l))
	fmt.Fprintf(&b, `<input type="checkbox" id="%s-toggle" class="action-toggle">`+"\n", domID)
	fmt.Fprintf(&b, `<label for="%s-toggle" class="link-card action-header" style="%s"><span class="link-title">%s</span><span class="action-chevron">&#9662;</span></label>`+"\n",
		domID, r.cardStyle(), escapeHTML(l.Title))
	fmt.Fprintf(&b, `<div class="action-form" id="%s">`+"\n", domID)
	for _, f := range a.Fields {
		b.WriteString(renderActionField(f))
	}
	fmt.Fprintf(&b, `<button type="button" id="%s-send" class="link-card action-send" style="%s">Send on WhatsApp</button>`+"\n", domID, r.cardStyle())
	b.WriteString("</div>\n</div>\n")

	r.scripts = append(r.scripts, actionScript(domID, a.MessageTemplate, a.WhatsAppNumber))
	return b.String()
}

func renderActionField(f profile.ActionField) string {
	label := escapeHTML(f.Label)
	required := ""
	if f.Required {
		required = " required"
	}
	switch f.Type {
	case "select":
		var opts strings.Builder
		for _, o := range f.Options {
			fmt.Fprintf(&opts, `<option value="%s">%s</option>`, escapeHTML(o), escapeHTML(o))
		}
		return fmt.Sprintf(`<label class="action-label">%s<select data-label="%s"%s>%s</select></label>`+"\n", label, label, required, opts.String())
	case "date":
		return fmt.Sprintf(`<label class="action-label">%s<input type="date" data-label="%s"%s></label>`+"\n", label, label, required)
	default:
		return fmt.Sprintf(`<label class="action-label">%s<input type="text" data-label="%s"%s></label>`+"\n", label, label, required)
	}
}

var donationBadges = map[string]string{
	"qris":     "QRIS",
	"saweria":  "Saweria",
	"trakteer": "Trakteer",
	"kofi":     "Ko-fi",
	"patreon":  "Patreon",
	"bmac":     "Buy Me a Coffee",
}

// renderDonation has two mutually exclusive presentations: QRIS shows an
// embedded QR image with no outbound link, every other platform shows an
// outbound button with no image.
func (r *renderer) renderDonation(l profile.LinkItem) string {
	badge, ok := donationBadges[l.DonationPlatform]
	if !ok {
		return ""
	}

	var body string
	if l.DonationPlatform == "qris" {
		if l.QrisImage == "" {
			return ""
		}
		body = fmt.Sprintf(`<img class="donation-qr" src="%s" alt="QRIS payment code" loading="lazy">`, escapeHTML(l.QrisImage))
	} else {
		safeURL := sanitizeURL(l.URL)
		if safeURL == "" {
			return ""
		}
		rel := ""
		if l.Target == "_blank" {
			rel = ` rel="noopener noreferrer"`
		}
		body = fmt.Sprintf(`<a class="link-card donation-link" style="%s" href="%s" target="%s"%s>%s</a>`,
			r.cardStyle(), escapeHTML(safeURL), escapeHTML(l.Target), rel, escapeHTML(l.Title))
	}
	r.use.donation = true

	cta := ""
	if l.DonationCta != "" {
		cta = fmt.Sprintf(`<p class="donation-cta">%s</p>`, escapeHTML(l.DonationCta))
	}
	return fmt.Sprintf(`<div class="donation-card"%s><span class="donation-badge">%s</span>%s%s</div>`+"\n",
		r.scheduleAttrs(l), badge, cta, body)
}

var portfolioGaps = map[string]string{
	"small":  "4px",
	"medium": "8px",
	"large":  "16px",
}

// renderPortfolio builds the masonry grid plus one :target overlay per
// image. The lightbox needs no script: fragment navigation drives it.
func (r *renderer) renderPortfolio(l profile.LinkItem) string {
	if len(l.PortfolioImages) == 0 {
		return ""
	}
	r.use.portfolio = true

	columns := l.PortfolioColumns
	if columns < 1 || columns > 4 {
		columns = 2
	}
	gap, ok := portfolioGaps[l.PortfolioGap]
	if !ok {
		gap = portfolioGaps["medium"]
	}

	n := len(l.PortfolioImages)
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="portfolio" style="column-count: %d; column-gap: %s;"%s>`+"\n", columns, gap, r.scheduleAttrs(l))
	for i, img := range l.PortfolioImages {
		alt := img.Caption
		if alt == "" {
			alt = fmt.Sprintf("Image %d", i+1)
		}
		fmt.Fprintf(&b, `<a href="#lb-%s-%d"><img src="%s" alt="%s" loading="lazy" style="margin-bottom: %s;"></a>`+"\n",
			escapeHTML(l.ID), i, escapeHTML(img.Src), escapeHTML(alt), gap)
	}
	b.WriteString("</div>\n")

	// Overlays: fixed, hidden, revealed by :target; prev/next wrap around.
	for i, img := range l.PortfolioImages {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		caption := ""
		if img.Caption != "" {
			caption = fmt.Sprintf(`<p class="lb-caption">%s</p>`, escapeHTML(img.Caption))
		}
		nav := ""
		if n > 1 {
			nav = fmt.Sprintf(`<a class="lb-prev" href="#lb-%[1]s-%[2]d">&#8249;</a><a class="lb-next" href="#lb-%[1]s-%[3]d">&#8250;</a>`,
				escapeHTML(l.ID), prev, next)
		}
		fmt.Fprintf(&b, `<div class="lightbox" id="lb-%s-%d"><a class="lb-close" href="#_">&times;</a>%s<figure><img src="%s" alt="%s">%s</figure></div>`+"\n",
			escapeHTML(l.ID), i, nav, escapeHTML(img.Src), escapeHTML(img.Caption), caption)
	}
	return b.String()
}

func (r *renderer) renderCountdown(l profile.LinkItem) string {
	if l.TargetDate == "" {
		return ""
	}
	// A date the page script cannot parse would freeze the grid at zero,
	// so it is dropped the same way a missing date is.
	if _, err := profile.ParseTargetDate(l.TargetDate); err != nil {
		return ""
	}
	r.use.countdown = true

	style := l.TimerStyle
	if style == "" {
		style = "card"
	}
	domID := "cd-" + l.ID
	label := orDefault(l.TimerLabel, l.Title)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="countdown countdown--%s" id="%s"%s>`+"\n", escapeHTML(style), escapeHTML(domID), r.scheduleAttrs(l))
	if label != "" {
		fmt.Fprintf(&b, `<p class="cd-title">%s</p>`+"\n", escapeHTML(label))
	}
	b.WriteString(`<div class="cd-grid">` + "\n")
	for _, cell := range []struct{ key, unit string }{
		{"d", "Days"}, {"h", "Hours"}, {"m", "Minutes"}, {"s", "Seconds"},
	} {
		fmt.Fprintf(&b, `<div class="cd-cell"><span class="cd-num" id="%s-%s">00</span><span class="cd-unit">%s</span></div>`+"\n", domID, cell.key, cell.unit)
	}
	b.WriteString("</div>\n")
	b.WriteString(`<p class="cd-done" style="display:none">Time&#039;s up!</p>` + "\n")
	b.WriteString("</div>\n")

	r.scripts = append(r.scripts, countdownScript(domID, l.TargetDate))
	return b.String()
}

// renderLeadForm emits a plain HTML form posting to the configured
// form-relay provider. The browser handles required-field validation;
// formsubmit.co additionally needs the return-URL field set at submit.
func (r *renderer) renderLeadForm(l profile.LinkItem) string {
	fields := l.FormFields
	if len(fields) == 0 {
		fields = []string{"name", "email", "message"}
	}

	domID := "lf-" + l.ID
	var action, hidden string
	switch l.FormProvider {
	case "web3forms":
		if l.FormAccessKey == "" {
			return ""
		}
		action = "https://api.web3forms.com/submit"
		hidden = fmt.Sprintf(`<input type="hidden" name="access_key" value="%s">`, escapeHTML(l.FormAccessKey))
		r.use.formOrigins = append(r.use.formOrigins, "https://api.web3forms.com")
	case "formsubmit":
		if l.FormEmail == "" {
			return ""
		}
		action = "https://formsubmit.co/" + url.PathEscape(l.FormEmail)
		hidden = `<input type="hidden" name="_captcha" value="false"><input type="hidden" name="_next" value="">`
		r.use.formOrigins = append(r.use.formOrigins, "https://formsubmit.co")
		r.scripts = append(r.scripts, leadFormNextScript(domID))
	default:
		return ""
	}
	r.use.leadForm = true

	var inputs strings.Builder
	for _, f := range fields {
		switch f {
		case "name":
			inputs.WriteString(`<input type="text" name="name" placeholder="Name" required>` + "\n")
		case "email":
			inputs.WriteString(`<input type="email" name="email" placeholder="Email" required>` + "\n")
		case "phone":
			inputs.WriteString(`<input type="tel" name="phone" placeholder="Phone" required>` + "\n")
		case "message":
			inputs.WriteString(`<textarea name="message" placeholder="Message" rows="3" required></textarea>` + "\n")
		}
	}

	cta := orDefault(l.FormCta, "Send")
	return fmt.Sprintf(`<form class="lead-form" id="%s" method="POST" action="%s"%s><p class="lead-title">%s</p>%s%s<button type="submit" class="link-card lead-submit" style="%s">%s</button></form>`+"\n",
		escapeHTML(domID), escapeHTML(action), r.scheduleAttrs(l), escapeHTML(l.Title), inputs.String(), hidden, r.cardStyle(), escapeHTML(cta))
}
