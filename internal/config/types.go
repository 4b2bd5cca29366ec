package config

// Config is the top-level linkforge tool configuration, corresponding to
// .linkforge.yml. It locates the profile document and controls the export
// and preview commands; everything about the page itself lives in the
// profile document, not here.
type Config struct {
	ProfilePath string       `yaml:"profile" koanf:"profile"`
	OutputDir   string       `yaml:"output_dir" koanf:"output_dir"`
	Serve       ServeConfig  `yaml:"serve" koanf:"serve"`
	Assets      AssetsConfig `yaml:"assets" koanf:"assets"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Host  string `yaml:"host" koanf:"host"`
	Port  int    `yaml:"port" koanf:"port"`
	Watch bool   `yaml:"watch" koanf:"watch"`
	Open  bool   `yaml:"open" koanf:"open"`
}

// AssetsConfig controls image inlining for embed-assets.
type AssetsConfig struct {
	Include      []string `yaml:"include" koanf:"include"`
	MaxDimension int      `yaml:"max_dimension" koanf:"max_dimension"`
	TargetKB     int      `yaml:"target_kb" koanf:"target_kb"`
}
