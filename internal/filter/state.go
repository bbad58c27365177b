// Package filter owns the session-local search, category and tag selection
// and derives the visible subset of a catalog from it.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"kbase/internal/catalog"
	"kbase/internal/domain"
)

// Snapshot is an immutable copy of the filter state
type Snapshot struct {
	SearchQuery      string
	SelectedCategory domain.Category
	SelectedTags     []string
}

// State is the mutable filter selection for one session.
// The zero value is not ready for use; call New.
type State struct {
	searchQuery      string
	selectedCategory domain.Category
	selectedTags     []string // insertion order, no duplicates
}

// New creates a filter state with defaults: empty query, all categories,
// no tags.
func New() *State {
	return &State{selectedCategory: domain.CategoryAll}
}

// SetSearchQuery replaces the search string as typed
func (s *State) SetSearchQuery(text string) {
	s.searchQuery = text
}

// SetSelectedCategory replaces the active category
func (s *State) SetSelectedCategory(category domain.Category) {
	s.selectedCategory = category
}

// ToggleTag removes tag if it is selected, otherwise appends it
func (s *State) ToggleTag(tag string) {
	if i := slices.Index(s.selectedTags, tag); i >= 0 {
		s.selectedTags = slices.Delete(s.selectedTags, i, i+1)
		return
	}
	s.selectedTags = append(s.selectedTags, tag)
}

// ClearTags empties the tag selection
func (s *State) ClearTags() {
	s.selectedTags = nil
}

// Reset restores every field to its default
func (s *State) Reset() {
	s.searchQuery = ""
	s.selectedCategory = domain.CategoryAll
	s.selectedTags = nil
}

// SearchQuery returns the current search string
func (s *State) SearchQuery() string {
	return s.searchQuery
}

// SelectedCategory returns the active category or the sentinel
func (s *State) SelectedCategory() domain.Category {
	return s.selectedCategory
}

// SelectedTags returns the selected tags in the order they were added
func (s *State) SelectedTags() []string {
	return slices.Clone(s.selectedTags)
}

// IsTagSelected reports whether tag is part of the selection
func (s *State) IsTagSelected(tag string) bool {
	return slices.Contains(s.selectedTags, tag)
}

// IsFiltered reports whether any predicate is active
func (s *State) IsFiltered() bool {
	return s.searchQuery != "" || s.selectedCategory != domain.CategoryAll || len(s.selectedTags) > 0
}

// Snapshot returns a copy of the current state
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		SearchQuery:      s.searchQuery,
		SelectedCategory: s.selectedCategory,
		SelectedTags:     s.SelectedTags(),
	}
}

// FilteredArticles returns, in catalog order, every article matching the
// current state
func (s *State) FilteredArticles(c *catalog.Catalog) []domain.Article {
	return Apply(c, s.Snapshot())
}

// Apply returns the articles of c matching snap, in catalog order
func Apply(c *catalog.Catalog, snap Snapshot) []domain.Article {
	var out []domain.Article
	c.Each(func(a domain.Article) bool {
		if Matches(a, snap) {
			out = append(out, a.Clone())
		}
		return true
	})
	return out
}

// Heading returns the title shown above the results
func (s *State) Heading() string {
	if s.selectedCategory == domain.CategoryAll {
		return "Все статьи"
	}
	return s.selectedCategory.String()
}

// Summary returns the result line, e.g. "Найдено 2 статей с тегами: API, SQL"
func (s *State) Summary(matched int) string {
	line := fmt.Sprintf("Найдено %d статей", matched)
	if len(s.selectedTags) > 0 {
		line += " с тегами: " + strings.Join(s.selectedTags, ", ")
	}
	return line
}

// Event describes the state after a change, for publishing on the bus
func (s *State) Event(matched int) domain.FilterChangedEvent {
	return domain.FilterChangedEvent{
		SearchQuery:      s.searchQuery,
		SelectedCategory: s.selectedCategory,
		SelectedTags:     s.SelectedTags(),
		Matched:          matched,
	}
}
