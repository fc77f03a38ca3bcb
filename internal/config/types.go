package config

// Config is the top-level blog configuration, corresponding to blog.yml.
type Config struct {
	Title       string   `yaml:"title" koanf:"title"`
	Author      string   `yaml:"author" koanf:"author"`
	Description string   `yaml:"description" koanf:"description"`
	BaseURL     string   `yaml:"base_url" koanf:"base_url"`
	ContentDir  string   `yaml:"content_dir" koanf:"content_dir"`
	StaticDir   string   `yaml:"static_dir" koanf:"static_dir"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	Categories  []string `yaml:"categories" koanf:"categories"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`

	// HighlightLight and HighlightDark name the chroma styles used for
	// the two syntax-highlighting stylesheets.
	HighlightLight string `yaml:"highlight_light" koanf:"highlight_light"`
	HighlightDark  string `yaml:"highlight_dark" koanf:"highlight_dark"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds preview-server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
