// Package content loads markdown posts with frontmatter and renders them
// to HTML, producing the card metadata consumed by the site generator.
package content

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Post is one rendered blog post.
type Post struct {
	Slug       string
	Title      string
	Date       time.Time
	Category   string
	Tags       []string
	Summary    string
	Draft      bool
	SourcePath string // path relative to the content directory
	Permalink  string // output path relative to the site root

	HTML      template.HTML // rendered body
	PlainText string        // full plain-text rendering, for search matching
	Snippet   string        // truncated plain text for the post card
}

// frontMatter is the YAML block at the top of each post file.
type frontMatter struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Summary  string   `yaml:"summary"`
	Draft    bool     `yaml:"draft"`
}

// dateFormats are tried in order when parsing the frontmatter date.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a frontmatter date string against the known formats.
func parseDate(s string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q: use YYYY-MM-DD or RFC3339", s)
}

// Slugify turns a post title into a filesystem- and URL-safe slug.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// TitleFromSlug reconstructs a display title from a slugged filename,
// used when a post has no title frontmatter.
func TitleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}
