// Package site turns loaded posts into a self-contained static site:
// one page per post, an index with the filterable card grid, stylesheets,
// the client script, a search index, and an RSS feed.
package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arumugaprakash-t/blogs/internal/config"
	"github.com/arumugaprakash-t/blogs/internal/content"
	"github.com/arumugaprakash-t/blogs/internal/progress"
)

// Generator builds the static site described by a Config.
type Generator struct {
	Config *config.Config

	// LiveReload injects the reload script into every page; only the
	// preview server sets this.
	LiveReload bool

	// Reporter receives per-page progress. Nil disables reporting.
	Reporter progress.Reporter

	// Warnf receives non-fatal findings. Nil sends them to stderr.
	Warnf func(format string, args ...any)
}

// New returns a Generator for the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{Config: cfg}
}

// siteData is the site-wide template context.
type siteData struct {
	Title       string
	Description string
	Author      string
	BaseURL     string
}

// indexData is the context for the index template.
type indexData struct {
	Site       siteData
	Categories []string
	Cards      []*content.Post
	LiveReload bool
}

// postData is the context for a single post page.
type postData struct {
	Site       siteData
	Post       *content.Post
	LiveReload bool
}

// Generate builds the full site into Config.OutputDir and returns the
// number of pages written (posts plus the index).
func (g *Generator) Generate() (int, error) {
	cfg := g.Config

	loader := content.NewLoader(cfg.ContentDir, cfg.Categories)
	if len(cfg.Include) > 0 {
		loader.Include = cfg.Include
	}
	if len(cfg.Exclude) > 0 {
		loader.Exclude = cfg.Exclude
	}
	loader.Warnf = g.warnf

	posts, err := loader.Load()
	if err != nil {
		return 0, fmt.Errorf("loading content: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Static assets first so generated files win on name collisions.
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if err := copyDir(cfg.StaticDir, cfg.OutputDir); err != nil {
			return 0, fmt.Errorf("copying static assets: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := WriteSyntaxStylesheets(cfg.OutputDir, cfg.HighlightLight, cfg.HighlightDark); err != nil {
		return 0, fmt.Errorf("writing syntax stylesheets: %w", err)
	}

	entries := BuildSearchIndex(posts)
	if err := WriteSearchIndex(entries, filepath.Join(cfg.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if err := WriteFeed(g.site(), posts, filepath.Join(cfg.OutputDir, "feed.xml")); err != nil {
		return 0, fmt.Errorf("writing feed: %w", err)
	}

	indexTmpl, err := template.New("index").Parse(indexTemplate + livereloadTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing index template: %w", err)
	}
	postTmpl, err := template.New("post").Parse(postTemplate + livereloadTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing post template: %w", err)
	}

	total := len(posts) + 1
	if g.Reporter != nil {
		g.Reporter.Start(total)
		defer g.Reporter.Finish()
	}

	for i, post := range posts {
		if err := g.renderPost(postTmpl, post); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", post.SourcePath, err)
		}
		if g.Reporter != nil {
			g.Reporter.Update(i+1, post.Slug)
		}
	}

	if err := g.renderIndex(indexTmpl, posts); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}
	if g.Reporter != nil {
		g.Reporter.Update(total, "index")
	}

	return total, nil
}

func (g *Generator) site() siteData {
	return siteData{
		Title:       g.Config.Title,
		Description: g.Config.Description,
		Author:      g.Config.Author,
		BaseURL:     g.Config.BaseURL,
	}
}

// categories returns the configured vocabulary, or (when none is
// configured) the distinct categories present in the posts, in first-seen
// order, so the filter bar never offers a button that selects nothing.
func (g *Generator) categories(posts []*content.Post) []string {
	if len(g.Config.Categories) > 0 {
		return g.Config.Categories
	}
	seen := make(map[string]bool)
	var cats []string
	for _, p := range posts {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

func (g *Generator) renderIndex(tmpl *template.Template, posts []*content.Post) error {
	data := indexData{
		Site:       g.site(),
		Categories: g.categories(posts),
		Cards:      posts,
		LiveReload: g.LiveReload,
	}

	f, err := os.Create(filepath.Join(g.Config.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

func (g *Generator) renderPost(tmpl *template.Template, post *content.Post) error {
	outPath := filepath.Join(g.Config.OutputDir, filepath.FromSlash(post.Permalink))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, postData{Site: g.site(), Post: post, LiveReload: g.LiveReload})
}

func (g *Generator) warnf(format string, args ...any) {
	if g.Warnf != nil {
		g.Warnf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// copyDir recursively copies the contents of src into dst.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
