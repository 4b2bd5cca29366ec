package config

// DefaultInclude are glob patterns searched for local images when inlining
// assets into the exported page.
var DefaultInclude = []string{
	"assets/**/*.{png,jpg,jpeg,webp,gif}",
	"images/**/*.{png,jpg,jpeg,webp,gif}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProfilePath: "profile.json",
		OutputDir:   "dist",
		Serve: ServeConfig{
			Host:  "127.0.0.1",
			Port:  4173,
			Watch: true,
			Open:  false,
		},
		Assets: AssetsConfig{
			Include:      DefaultInclude,
			MaxDimension: 400,
			TargetKB:     150,
		},
	}
}
