package profile

import (
	"fmt"
	"strings"
)

// Migrate upgrades a raw decoded document to CurrentVersion by running
// each version step in sequence. Steps are pure OldShape → NewShape
// transforms; nothing here touches disk. Documents newer than this build
// are rejected rather than guessed at.
func Migrate(raw map[string]any) (map[string]any, error) {
	version, _ := raw["version"].(string)
	if version == "" {
		return nil, fmt.Errorf("profile has no version field")
	}

	switch {
	case version == CurrentVersion:
		return raw, nil
	case strings.HasPrefix(version, "1"):
		return migrateV1(raw), nil
	default:
		return nil, fmt.Errorf("unsupported profile version %q (this build reads up to %s)", version, CurrentVersion)
	}
}

// migrateV1 upgrades a 1.x document: the 1.x editor had no testimonials,
// tabs or custom CSS, and early documents could omit a link target.
func migrateV1(raw map[string]any) map[string]any {
	if _, ok := raw["testimonials"]; !ok {
		raw["testimonials"] = []any{}
	}
	if _, ok := raw["tabs"]; !ok {
		raw["tabs"] = []any{}
	}

	if links, ok := raw["links"].([]any); ok {
		for _, l := range links {
			link, ok := l.(map[string]any)
			if !ok {
				continue
			}
			if t, _ := link["target"].(string); t == "" {
				link["target"] = "_blank"
			}
		}
	}

	raw["version"] = CurrentVersion
	return raw
}
