package state

// Pane identifies a focusable region of the screen
type Pane int

const (
	PaneCategories Pane = iota
	PaneTags
	PaneArticles
)

var paneNames = map[Pane]string{
	PaneCategories: "categories",
	PaneTags:       "tags",
	PaneArticles:   "articles",
}

func (p Pane) String() string {
	return paneNames[p]
}

const paneCount = 3

// AppState contains the presentation state of the UI. Filter selection
// lives in filter.State; this only tracks where the user is looking.
type AppState struct {
	Focus Pane

	// Cursor per pane
	CategoryCursor int
	TagCursor      int
	ArticleCursor  int

	// First visible card row in the grid
	ArticleRowOffset int

	// UI state
	ShowAddNotice   bool
	StatusMessage   string // status bar message
	SearchBackup    string // query to restore when search is cancelled
	RenderingPaused bool   // true while an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{Focus: PaneArticles}
}

// CycleFocus moves focus to the next pane, or the previous one when
// reverse is set
func (s *AppState) CycleFocus(reverse bool) {
	step := 1
	if reverse {
		step = paneCount - 1
	}
	s.Focus = Pane((int(s.Focus) + step) % paneCount)
}

// Cursor returns the cursor of the focused pane
func (s *AppState) Cursor() int {
	switch s.Focus {
	case PaneCategories:
		return s.CategoryCursor
	case PaneTags:
		return s.TagCursor
	default:
		return s.ArticleCursor
	}
}

// SetCursor sets the cursor of the focused pane
func (s *AppState) SetCursor(i int) {
	switch s.Focus {
	case PaneCategories:
		s.CategoryCursor = i
	case PaneTags:
		s.TagCursor = i
	default:
		s.ArticleCursor = i
	}
}

// ResetArticles moves the article cursor and scroll back to the top.
// Called whenever the filtered list changes.
func (s *AppState) ResetArticles() {
	s.ArticleCursor = 0
	s.ArticleRowOffset = 0
}
