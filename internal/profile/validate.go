package profile

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a document against the import schema: required fields,
// length caps, enum membership, URL shape, and the structural invariants
// the renderer depends on (unique ids, dense order, tab references).
// Validation constrains shape, not content safety — the renderer still
// escapes every string.
func (c *ProfileConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("invalid profile: %s failed %q", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid profile: %w", err)
	}

	seen := make(map[string]bool, len(c.Links))
	orders := make(map[int]bool, len(c.Links))
	for _, l := range c.Links {
		if seen[l.ID] {
			return fmt.Errorf("invalid profile: duplicate link id %q", l.ID)
		}
		seen[l.ID] = true

		if orders[l.Order] {
			return fmt.Errorf("invalid profile: duplicate link order %d", l.Order)
		}
		orders[l.Order] = true

		if l.URL != "" {
			if err := checkURL(l.URL); err != nil {
				return fmt.Errorf("invalid profile: link %q: %w", l.Title, err)
			}
		}

		if l.TargetDate != "" {
			if _, err := ParseTargetDate(l.TargetDate); err != nil {
				return fmt.Errorf("invalid profile: link %q: %w", l.Title, err)
			}
		}
	}
	// Orders are unique; density means every value in [0, n) is present.
	for i := range c.Links {
		if !orders[i] {
			return fmt.Errorf("invalid profile: link order values are not contiguous (missing %d)", i)
		}
	}

	for _, tab := range c.Tabs {
		for _, id := range tab.LinkIDs {
			if !seen[id] {
				return fmt.Errorf("invalid profile: tab %q references unknown link id %q", tab.Label, id)
			}
		}
	}

	return nil
}

// targetDateLayouts covers the formats the in-page Date constructor
// also accepts, so a date that validates here counts down in the page.
var targetDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTargetDate parses a countdown target in any accepted layout.
func ParseTargetDate(raw string) (time.Time, error) {
	for _, layout := range targetDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable target date %q", raw)
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed url %q", raw)
	}
	switch u.Scheme {
	case "http", "https", "mailto", "tel":
		return nil
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}
