package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"kbase/internal/domain"
)

// fold maps s to its Unicode case-folded form so that comparisons
// ignore letter case in any script, Cyrillic included.
func fold(s string) string {
	return cases.Fold().String(s)
}

// MatchesSearch reports whether the title or description contains query,
// ignoring case. An empty query matches everything.
func MatchesSearch(a domain.Article, query string) bool {
	if query == "" {
		return true
	}
	q := fold(query)
	return strings.Contains(fold(a.Title), q) || strings.Contains(fold(a.Description), q)
}

// MatchesCategory reports whether the article belongs to category.
// The sentinel matches everything; any other value, known or not,
// must equal the article's category exactly.
func MatchesCategory(a domain.Article, category domain.Category) bool {
	return category == domain.CategoryAll || a.Category == category
}

// MatchesTags reports whether the article carries at least one of tags.
// An empty selection matches everything.
func MatchesTags(a domain.Article, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if a.HasTag(t) {
			return true
		}
	}
	return false
}

// Matches combines the three predicates with logical AND
func Matches(a domain.Article, s Snapshot) bool {
	return MatchesSearch(a, s.SearchQuery) &&
		MatchesCategory(a, s.SelectedCategory) &&
		MatchesTags(a, s.SelectedTags)
}
