package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const samplePost = `---
title: Go Microservices
date: 2025-03-14
category: tech
tags: [go, architecture]
summary: Designing service boundaries.
---

# Go Microservices

Carving a monolith into services is mostly a question of boundaries.

` + "```go\nfunc main() {}\n```" + `
`

func TestLoadPost(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "go-microservices.md"), samplePost)

	loader := NewLoader(dir, []string{"tech", "travel"})
	posts, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(posts))
	}

	p := posts[0]
	if p.Title != "Go Microservices" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Category != "tech" {
		t.Errorf("category = %q", p.Category)
	}
	if p.Slug != "go-microservices" {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.Permalink != "posts/go-microservices.html" {
		t.Errorf("permalink = %q", p.Permalink)
	}
	if p.Date.Year() != 2025 || p.Date.Month() != 3 {
		t.Errorf("date = %v", p.Date)
	}
	if p.Snippet != "Designing service boundaries." {
		t.Errorf("snippet = %q, want the frontmatter summary", p.Snippet)
	}
	if !strings.Contains(string(p.HTML), "<h1") {
		t.Error("HTML should contain the rendered heading")
	}
	// Highlighting must emit chroma classes, not inline styles, so the
	// light/dark stylesheets can be swapped.
	if !strings.Contains(string(p.HTML), `class="chroma"`) {
		t.Error("code block should carry chroma classes")
	}
	if strings.Contains(p.PlainText, "<") {
		t.Errorf("plain text should contain no markup: %q", p.PlainText)
	}
}

func TestLoadSortsReverseChronological(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "older.md"), "---\ntitle: Older\ndate: 2024-01-01\ncategory: tech\n---\nOld words.\n")
	writeTestFile(t, filepath.Join(dir, "newer.md"), "---\ntitle: Newer\ndate: 2025-06-30\ncategory: tech\n---\nNew words.\n")
	writeTestFile(t, filepath.Join(dir, "undated.md"), "---\ntitle: Undated\ncategory: tech\n---\nTimeless words.\n")

	posts, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("posts = %d, want 3", len(posts))
	}
	var titles []string
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	want := []string{"Newer", "Older", "Undated"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
}

func TestLoadSkipsDraftsAndExcluded(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "published.md"), "---\ntitle: Published\ncategory: tech\n---\nLive.\n")
	writeTestFile(t, filepath.Join(dir, "wip.md"), "---\ntitle: WIP\ncategory: tech\ndraft: true\n---\nNot yet.\n")
	writeTestFile(t, filepath.Join(dir, "_scratch.md"), "---\ntitle: Scratch\n---\nNotes.\n")
	writeTestFile(t, filepath.Join(dir, "drafts", "idea.md"), "---\ntitle: Idea\n---\nSomeday.\n")

	posts, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Published" {
		t.Errorf("posts = %d, want only the published one", len(posts))
	}
}

func TestLoadWarnsOnUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "stray.md"), "---\ntitle: Stray\ncategory: gardening\ndate: 2025-01-01\n---\nWeeds.\n")

	var warnings []string
	loader := NewLoader(dir, []string{"tech", "travel"})
	loader.Warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	posts, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1 (unknown category still builds)", len(posts))
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "gardening") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the unknown category, got %v", warnings)
	}
}

func TestLoadNoFrontmatterFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "bare-note.md"), "# Bare Note\n\nJust markdown.\n")

	posts, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(posts))
	}
	if posts[0].Title != "Bare Note" {
		t.Errorf("title = %q, want title-cased filename", posts[0].Title)
	}
	if posts[0].Category != "" {
		t.Errorf("category = %q, want empty", posts[0].Category)
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope"), nil).Load()
	if err == nil {
		t.Error("Load should fail for a missing content directory")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello, World!", "hello-world"},
		{"Go  Microservices", "go-microservices"},
		{"2025 Year In Review", "2025-year-in-review"},
		{"árvíztűrő", "rv-zt-r"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleFromSlug(t *testing.T) {
	if got := TitleFromSlug("java-performance"); got != "Java Performance" {
		t.Errorf("TitleFromSlug = %q", got)
	}
}

func TestTruncateSnippet(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := truncateSnippet(long, 50)
	if len([]rune(got)) > 51 { // 50 plus ellipsis
		t.Errorf("snippet too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated snippet should end with ellipsis: %q", got)
	}
	if got := truncateSnippet("short", 50); got != "short" {
		t.Errorf("short text should pass through, got %q", got)
	}
}
