// Package config loads the linkforge tool configuration from .linkforge.yml
// with LINKFORGE_* environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config filename in the working directory.
const DefaultPath = ".linkforge.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LINKFORGE_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// LINKFORGE_OUTPUT_DIR -> output_dir, LINKFORGE_SERVE.PORT -> serve.port.
	if err := k.Load(env.Provider("LINKFORGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LINKFORGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ProfilePath == "" {
		return fmt.Errorf("profile is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port %d out of range", c.Serve.Port)
	}
	if c.Assets.MaxDimension <= 0 {
		return fmt.Errorf("assets.max_dimension must be positive")
	}
	if c.Assets.TargetKB <= 0 {
		return fmt.Errorf("assets.target_kb must be positive")
	}
	return nil
}
