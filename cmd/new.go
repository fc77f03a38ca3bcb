package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arumugaprakash-t/blogs/internal/content"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new post with frontmatter scaffolding",
	Long:  `Creates a markdown file in the content directory with the title, date, and category pre-filled, ready to write.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().String("category", "", "category for the new post")
	newCmd.Flags().Bool("draft", false, "mark the post as a draft")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	slug := content.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	category, _ := cmd.Flags().GetString("category")
	if category == "" && len(cfg.Categories) > 0 {
		category = cfg.Categories[0]
	}
	draft, _ := cmd.Flags().GetBool("draft")

	path := filepath.Join(cfg.ContentDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	fmt.Fprintf(&b, "date: %s\n", time.Now().Format("2006-01-02"))
	if category != "" {
		fmt.Fprintf(&b, "category: %s\n", category)
	}
	b.WriteString("summary: \n")
	if draft {
		b.WriteString("draft: true\n")
	}
	b.WriteString("---\n\nWrite your post here.\n")

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
