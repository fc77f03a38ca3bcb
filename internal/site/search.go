package site

import (
	"encoding/json"
	"os"

	"github.com/arumugaprakash-t/blogs/internal/content"
)

// maxIndexedContent bounds the full-text payload per entry, in runes.
const maxIndexedContent = 2000

// SearchEntry is one searchable post card in the index consumed by the
// preview server's search endpoint.
type SearchEntry struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Snippet  string `json:"snippet"`
	Content  string `json:"content"`
}

// BuildSearchIndex maps posts to search entries, preserving source order.
func BuildSearchIndex(posts []*content.Post) []SearchEntry {
	entries := make([]SearchEntry, 0, len(posts))
	for _, p := range posts {
		text := p.PlainText
		if runes := []rune(text); len(runes) > maxIndexedContent {
			text = string(runes[:maxIndexedContent])
		}
		entries = append(entries, SearchEntry{
			Path:     p.Permalink,
			Title:    p.Title,
			Category: p.Category,
			Snippet:  p.Snippet,
			Content:  text,
		})
	}
	return entries
}

// WriteSearchIndex writes the index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// ReadSearchIndex loads a previously written index.
func ReadSearchIndex(path string) ([]SearchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
