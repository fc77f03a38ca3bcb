package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arumugaprakash-t/blogs/internal/progress"
	"github.com/arumugaprakash-t/blogs/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long:  `Reads markdown posts from the content directory and writes the complete site (pages, stylesheets, client script, search index, RSS feed) to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gen := site.New(cfg)
		gen.Reporter = progress.NewReporter()

		pages, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Printf("Site built: %s (%d pages)\n", cfg.OutputDir, pages)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
