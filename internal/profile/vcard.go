package profile

import "strings"

// VCard renders the profile as a vCard 3.0 string, used by the exported
// page's save-contact button. Lines are CRLF-joined per the format.
func (p Profile) VCard(pageURL string) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
	}

	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	lines = append(lines,
		"FN:"+escapeVCard(name),
		"N:"+escapeVCard(name)+";;;;",
	)

	if p.Bio != "" {
		lines = append(lines, "NOTE:"+escapeVCard(p.Bio))
	}
	if p.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+strings.TrimSpace(p.Phone))
	}
	if p.Email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+strings.TrimSpace(p.Email))
	}
	if p.Location != "" {
		lines = append(lines, "ADR;TYPE=WORK:;;"+escapeVCard(p.Location)+";;;;")
	}
	if pageURL != "" {
		lines = append(lines, "URL:"+pageURL)
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

// HasContact reports whether the profile carries enough data for the
// save-contact button to be worth rendering.
func (p Profile) HasContact() bool {
	return p.Phone != "" || p.Email != ""
}

func escapeVCard(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
