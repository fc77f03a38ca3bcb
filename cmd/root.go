package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arumugaprakash-t/blogs/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "blogs",
	Short: "Static site generator for a personal blog",
	Long: `Blogs turns a directory of markdown posts into a self-contained
static website: a filterable post grid with full-text search, per-post
pages with syntax highlighting, a light and dark theme, an RSS feed,
and a local preview server with live reload.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "blog.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `blogs init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
