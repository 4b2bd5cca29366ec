package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/manifoldco/promptui"

	"linkforge/internal/profile"
	"linkforge/internal/theme"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)

// RunWizard runs the interactive project setup: it prompts for the page
// identity and look, writes the starter profile document, and saves the
// tool config to .linkforge.yml. Returns the config and the new profile.
func RunWizard() (*Config, *profile.ProfileConfig, error) {
	fmt.Println("Welcome to linkforge! Let's set up your page.")
	fmt.Println()

	// 1. Display name.
	namePrompt := promptui.Prompt{
		Label:   "Display name",
		Default: "Your Name",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("name must not be empty")
			}
			if len(s) > 50 {
				return fmt.Errorf("name must be at most 50 characters")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("name: %w", err)
	}

	// 2. Username, used for the archive filename and the vCard download.
	usernamePrompt := promptui.Prompt{
		Label:   "Username",
		Default: suggestUsername(name),
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("username must not be empty")
			}
			if len(s) > 30 {
				return fmt.Errorf("username must be at most 30 characters")
			}
			if !usernameRe.MatchString(s) {
				return fmt.Errorf("only lowercase letters, digits, . _ -")
			}
			return nil
		},
	}
	username, err := usernamePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("username: %w", err)
	}

	// 3. Bio.
	bioPrompt := promptui.Prompt{
		Label:   "Short bio",
		Default: "Welcome to my link page",
	}
	bio, err := bioPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("bio: %w", err)
	}

	// 4. Theme preset.
	presets := theme.Presets()
	presetItems := make([]string, len(presets))
	for i, p := range presets {
		presetItems[i] = fmt.Sprintf("%-10s %s", p.ID, p.Name)
	}
	presetPrompt := promptui.Select{
		Label: "Theme preset",
		Items: presetItems,
		Size:  len(presetItems),
	}
	presetIdx, _, err := presetPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("preset selection: %w", err)
	}
	preset := presets[presetIdx]

	// 5. Font.
	fonts := theme.Fonts()
	fontItems := make([]string, len(fonts))
	for i, f := range fonts {
		fontItems[i] = fmt.Sprintf("%-18s %s", f.Family, f.Category)
	}
	fontPrompt := promptui.Select{
		Label: "Font",
		Items: fontItems,
		Size:  len(fontItems),
	}
	fontIdx, _, err := fontPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("font selection: %w", err)
	}

	doc := profile.DefaultConfig()
	doc.Profile.Name = name
	doc.Profile.Username = username
	doc.Profile.Bio = bio
	doc.Theme.Preset = preset.ID
	doc.Theme.Colors = profile.ThemeColors{
		Background:     preset.Colors.Background,
		CardBackground: preset.Colors.CardBackground,
		Text:           preset.Colors.Text,
		Accent:         preset.Colors.Accent,
		LinkHover:      preset.Colors.LinkHover,
	}
	doc.Theme.Font = fonts[fontIdx].Family
	doc.Theme.ButtonStyle = preset.ButtonStyle

	cfg := DefaultConfig()

	if err := doc.Save(cfg.ProfilePath); err != nil {
		return nil, nil, fmt.Errorf("saving profile: %w", err)
	}
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nProfile saved to %s, configuration to %s\n", cfg.ProfilePath, DefaultPath)
	fmt.Println("Next: linkforge serve to preview, linkforge export when you're ready to publish.")
	return cfg, doc, nil
}

// suggestUsername derives a default username from the display name.
func suggestUsername(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "username"
	}
	if len(out) > 30 {
		out = out[:30]
	}
	return out
}
