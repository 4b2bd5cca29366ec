package cmd

import (
	"fmt"

	"linkforge/internal/config"
	"linkforge/internal/profile"
)

// loadConfig loads and validates the tool config, providing a
// user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `linkforge init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadProfile loads and validates the profile document named by the
// config. Migration to the current document version happens inside Load.
func loadProfile(cfg *config.Config) (*profile.ProfileConfig, error) {
	doc, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun `linkforge init` to create a profile", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", cfg.ProfilePath, err)
	}
	return doc, nil
}
