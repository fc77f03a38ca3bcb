package content

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude selects every markdown file under the content directory.
var DefaultInclude = []string{"**/*.md"}

// DefaultExcludes are patterns skipped during content discovery: editor
// leftovers and underscore-prefixed scratch files.
var DefaultExcludes = []string{
	"**/_*",
	"**/.*",
	"drafts/**",
}

// matchesInclude reports whether relPath matches any include pattern.
// An empty pattern list includes everything.
func matchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// matchesExclude reports whether relPath matches any exclude pattern.
func matchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath against each glob, with ** support via
// doublestar. Patterns are also tried against the bare filename so that
// "_*" style patterns work without a leading **/.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
