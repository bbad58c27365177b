package input

import (
	"kbase/internal/filter"
	"kbase/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Filter    *filter.State
	PaneSizes map[state.Pane]int // item count per pane
}

// FocusedPane returns the name of the focused pane
func (c *ModelContext) FocusedPane() string {
	return c.State.Focus.String()
}

// CurrentIndex returns the cursor of the focused pane
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor()
}

// TotalItems returns the number of items in the focused pane
func (c *ModelContext) TotalItems() int {
	return c.PaneSizes[c.State.Focus]
}

// HasSelectedTags returns true if any tag is selected
func (c *ModelContext) HasSelectedTags() bool {
	return len(c.Filter.SelectedTags()) > 0
}

// IsFiltered returns true if any filter predicate is active
func (c *ModelContext) IsFiltered() bool {
	return c.Filter.IsFiltered()
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.Filter.SearchQuery()
}

// NoticeVisible returns true while the add-article notice is shown
func (c *ModelContext) NoticeVisible() bool {
	return c.State.ShowAddNotice
}
