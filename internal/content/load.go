package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Loader reads a content directory into a reverse-chronological post list.
type Loader struct {
	ContentDir string
	Include    []string // glob patterns; empty means DefaultInclude
	Exclude    []string // glob patterns; empty means DefaultExcludes

	// Categories is the controlled vocabulary of the site. Posts carrying
	// a category outside this set still build, but a warning is reported
	// because no filter button will ever select them.
	Categories []string

	// Warnf receives non-fatal findings during loading. Nil discards them.
	Warnf func(format string, args ...any)
}

// NewLoader returns a Loader with default include/exclude patterns.
func NewLoader(contentDir string, categories []string) *Loader {
	return &Loader{
		ContentDir: contentDir,
		Include:    DefaultInclude,
		Exclude:    DefaultExcludes,
		Categories: categories,
	}
}

// newMarkdown builds the goldmark renderer. Highlighting emits chroma
// classes rather than inline styles so the light and dark syntax
// stylesheets can be swapped at runtime.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Load walks the content directory and returns all non-draft posts,
// newest first. Posts without a parseable date sort after dated ones.
func (l *Loader) Load() ([]*Post, error) {
	if _, err := os.Stat(l.ContentDir); err != nil {
		return nil, fmt.Errorf("content directory %s: %w", l.ContentDir, err)
	}

	include := l.Include
	if len(include) == 0 {
		include = DefaultInclude
	}

	md := newMarkdown()
	var posts []*Post

	err := filepath.WalkDir(l.ContentDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		relPath, err := filepath.Rel(l.ContentDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if !matchesInclude(relPath, include) || matchesExclude(relPath, l.Exclude) {
			return nil
		}

		post, err := l.loadPost(md, path, relPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", relPath, err)
		}
		if post.Draft {
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reverse-chronological; undated posts last, ties broken by slug so
	// the order is deterministic.
	sort.SliceStable(posts, func(i, j int) bool {
		pi, pj := posts[i], posts[j]
		switch {
		case pi.Date.IsZero() && pj.Date.IsZero():
			return pi.Slug < pj.Slug
		case pi.Date.IsZero():
			return false
		case pj.Date.IsZero():
			return true
		case !pi.Date.Equal(pj.Date):
			return pi.Date.After(pj.Date)
		}
		return pi.Slug < pj.Slug
	})

	l.checkCategories(posts)
	return posts, nil
}

// loadPost parses one markdown file into a Post.
func (l *Loader) loadPost(md goldmark.Markdown, path, relPath string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		// No frontmatter block at all: treat the whole file as markdown.
		l.warnf("%s: no frontmatter (%v)", relPath, err)
		body = raw
		fm = frontMatter{}
	}

	slug := Slugify(strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath)))

	post := &Post{
		Slug:       slug,
		Title:      fm.Title,
		Category:   fm.Category,
		Tags:       fm.Tags,
		Summary:    fm.Summary,
		Draft:      fm.Draft,
		SourcePath: relPath,
		Permalink:  "posts/" + slug + ".html",
	}
	if post.Title == "" {
		post.Title = TitleFromSlug(slug)
	}

	if fm.Date != "" {
		date, err := parseDate(fm.Date)
		if err != nil {
			l.warnf("%s: %v", relPath, err)
		} else {
			post.Date = date
		}
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	post.HTML = template.HTML(htmlBuf.String())

	text, err := plainText(htmlBuf.String())
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}
	post.PlainText = text
	if post.Summary != "" {
		post.Snippet = truncateSnippet(post.Summary, SnippetLength)
	} else {
		post.Snippet = truncateSnippet(text, SnippetLength)
	}

	return post, nil
}

// checkCategories warns about posts whose category is missing from the
// configured set, since no filter button will ever select them.
func (l *Loader) checkCategories(posts []*Post) {
	if len(l.Categories) == 0 {
		return
	}
	known := make(map[string]bool, len(l.Categories))
	for _, c := range l.Categories {
		known[c] = true
	}
	for _, p := range posts {
		if p.Category == "" {
			l.warnf("%s: missing category; only the All filter will show it", p.SourcePath)
		} else if !known[p.Category] {
			l.warnf("%s: category %q has no filter button; only the All filter will show it", p.SourcePath, p.Category)
		}
	}
}

func (l *Loader) warnf(format string, args ...any) {
	if l.Warnf != nil {
		l.Warnf(format, args...)
	}
}
