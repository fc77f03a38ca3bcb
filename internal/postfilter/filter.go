// Package postfilter implements the post-card filtering and search engine
// used by the generated site. The matching logic lives here, free of any
// DOM or template concerns, and the emitted client script mirrors it
// check for check.
package postfilter

import "strings"

// CategoryAll is the reserved category value that matches every card.
const CategoryAll = "all"

// Card is the in-memory record of one rendered post preview: its category,
// title, and searchable text. Cards are read-only once loaded.
type Card struct {
	Category string
	Title    string
	Snippet  string // truncated plain-text rendering of the post body
	Body     string // full plain-text rendering of the card
}

// State is the (active category, search query) pair that determines which
// cards are visible. The zero value is not useful; use NewState.
type State struct {
	ActiveCategory string
	Query          string
}

// NewState returns the default filter state: all categories, empty query.
func NewState() State {
	return State{ActiveCategory: CategoryAll}
}

// Result describes the outcome of one recompute cycle.
type Result struct {
	// Visible holds the indexes of visible cards in source order.
	// Filtering never reorders cards, only hides them.
	Visible []int

	// ShowEmptyState and ShowGrid are mutually exclusive: the empty-state
	// indicator appears exactly when zero cards are visible, and the grid
	// is hidden at the same time.
	ShowEmptyState bool
	ShowGrid       bool
}

// VisibleCount returns the number of visible cards.
func (r Result) VisibleCount() int { return len(r.Visible) }

// Recompute evaluates the matching rule for every card against the given
// state. It is a pure function: identical inputs always yield identical
// results, so calling it repeatedly is harmless.
func Recompute(st State, cards []Card) Result {
	query := NormalizeQuery(st.Query)

	var res Result
	for i, card := range cards {
		if matchCategory(st.ActiveCategory, card) && matchQuery(query, card) {
			res.Visible = append(res.Visible, i)
		}
	}

	res.ShowEmptyState = len(res.Visible) == 0
	res.ShowGrid = !res.ShowEmptyState
	return res
}

// Matches reports whether a single card passes the filter. The query in st
// is normalized before comparison.
func Matches(st State, card Card) bool {
	return matchCategory(st.ActiveCategory, card) && matchQuery(NormalizeQuery(st.Query), card)
}

// NormalizeQuery lower-cases and trims a raw search query. All query
// comparisons happen on the normalized form.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// matchCategory is an exact, case-sensitive comparison: categories are a
// controlled vocabulary set at authoring time, not user input.
func matchCategory(active string, card Card) bool {
	return active == CategoryAll || card.Category == active
}

// matchQuery checks the normalized query against title, snippet, and the
// full card text. The body check is deliberately redundant with the first
// two: any text visible on the card can match, even when it is not part
// of the title or snippet fields.
func matchQuery(query string, card Card) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Title), query) ||
		strings.Contains(strings.ToLower(card.Snippet), query) ||
		strings.Contains(strings.ToLower(card.Body), query)
}
