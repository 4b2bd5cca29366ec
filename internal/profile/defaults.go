package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"linkforge/internal/theme"
)

// DefaultConfig returns the document a fresh project starts from: one
// starter link, the midnight preset, footer on.
func DefaultConfig() *ProfileConfig {
	preset := theme.Preset("midnight")
	return &ProfileConfig{
		Version: CurrentVersion,
		Profile: Profile{
			Name:     "Your Name",
			Username: "username",
			Bio:      "Welcome to my link page",
			Avatar:   "",
		},
		Links: []LinkItem{
			{
				ID:      NewID(),
				Title:   "My Website",
				URL:     "https://example.com",
				Icon:    "link",
				Enabled: true,
				Order:   0,
				Target:  "_blank",
			},
		},
		Theme: ThemeConfig{
			Preset: preset.ID,
			Mode:   "dark",
			Colors: ThemeColors{
				Background:     preset.Colors.Background,
				CardBackground: preset.Colors.CardBackground,
				Text:           preset.Colors.Text,
				Accent:         preset.Colors.Accent,
				LinkHover:      preset.Colors.LinkHover,
			},
			Font:              "Inter",
			ButtonStyle:       "rounded",
			Animation:         "fade-up",
			BackgroundPattern: "none",
		},
		Seo: SeoConfig{
			Title:       "My Links",
			Description: "All my important links in one place.",
		},
		Settings: AppSettings{
			ShowFooter: true,
			FooterText: "Powered by LinkForge",
			Locale:     "en",
		},
	}
}

// NewID returns a fresh block id. IDs are unique and immutable once
// created; generated inline scripts scope their DOM ids under them.
func NewID() string {
	return uuid.NewString()[:8]
}

// Load reads, migrates and decodes a profile document from disk. The
// returned config has passed migration but not validation.
func Load(path string) (*ProfileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and migrates a profile document from raw JSON.
func Parse(data []byte) (*ProfileConfig, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	version, _ := raw["version"].(string)

	migrated, err := Migrate(raw)
	if err != nil {
		return nil, err
	}

	buf, err := json.Marshal(migrated)
	if err != nil {
		return nil, fmt.Errorf("re-encoding migrated profile: %w", err)
	}

	var cfg ProfileConfig
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	// The 1.x editor kept links in array order and had no order field, so
	// a migrated document decodes with every order at zero.
	if version != CurrentVersion {
		Resequence(cfg.Links)
	}
	return &cfg, nil
}

// Save writes the document to disk as indented JSON, matching the format
// the export-as-JSON flow produces.
func (c *ProfileConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile to %s: %w", path, err)
	}
	return nil
}

// Resequence rewrites Order values to be contiguous 0..n-1 while keeping
// the current relative order.
func Resequence(links []LinkItem) {
	for i := range links {
		links[i].Order = i
	}
}
