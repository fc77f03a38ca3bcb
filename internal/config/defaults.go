package config

import "github.com/arumugaprakash-t/blogs/internal/content"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "My Blog",
		ContentDir:     "content",
		StaticDir:      "static",
		OutputDir:      "public",
		Categories:     []string{"tech", "travel"},
		Include:        append([]string(nil), content.DefaultInclude...),
		Exclude:        append([]string(nil), content.DefaultExcludes...),
		HighlightLight: "github",
		HighlightDark:  "github-dark",
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
