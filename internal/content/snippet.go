package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SnippetLength is the maximum snippet size in runes.
const SnippetLength = 200

// plainText strips the rendered HTML down to whitespace-normalized text.
func plainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// truncateSnippet cuts text to at most limit runes, backing up to the last
// word boundary and appending an ellipsis when anything was removed.
func truncateSnippet(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
