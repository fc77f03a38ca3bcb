package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arumugaprakash-t/blogs/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a blog configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks about your site and writes a blog.yml config file. Use --defaults to skip the prompts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useDefaults, _ := cmd.Flags().GetBool("defaults")
		if useDefaults {
			cfg := config.DefaultConfig()
			if err := cfg.Save(cfgFile); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Printf("Wrote %s with default settings\n", cfgFile)
			return nil
		}
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().Bool("defaults", false, "write default config without prompting")
	rootCmd.AddCommand(initCmd)
}
