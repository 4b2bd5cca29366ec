package export

import (
	"sort"
	"strings"
)

// buildCSP assembles the Content-Security-Policy meta value from what the
// rendered body actually uses: an origin appears only when the specific
// config exercised it. Must run after the body has been rendered.
func (r *renderer) buildCSP() string {
	scriptSrc := []string{"'self'"}
	if len(r.scripts) > 0 || r.use.schedule {
		scriptSrc = append(scriptSrc, "'unsafe-inline'")
	}
	if r.cfg.Settings.AnalyticsID != "" {
		scriptSrc = append(scriptSrc, "https://cloud.umami.is")
	}

	frameSrc := []string{}
	if r.use.youtube {
		frameSrc = append(frameSrc, "https://www.youtube.com")
	}
	if r.use.spotify {
		frameSrc = append(frameSrc, "https://open.spotify.com")
	}
	frameSrc = append(frameSrc, dedupe(r.use.pdfOrigins)...)
	if len(frameSrc) == 0 {
		frameSrc = []string{"'none'"}
	}

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(scriptSrc, " "),
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
		"font-src 'self' https://fonts.gstatic.com",
		"img-src 'self' data: blob: https:",
		connectSrc(r.cfg.Settings.AnalyticsID),
		"object-src 'none'",
		"frame-src " + strings.Join(frameSrc, " "),
	}
	if origins := dedupe(r.use.formOrigins); len(origins) > 0 {
		directives = append(directives, "form-action 'self' "+strings.Join(origins, " "))
	}

	return strings.Join(directives, "; ") + ";"
}

// connectSrc allows the analytics beacon origin only when analytics is
// actually configured.
func connectSrc(analyticsID string) string {
	if analyticsID != "" {
		return "connect-src 'self' https://cloud.umami.is"
	}
	return "connect-src 'self'"
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
