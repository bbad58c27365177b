package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"kbase/internal/ui/input/types"
)

// SearchMode edits the search query. Every keystroke is reported as an
// UpdateTextAction so results follow the text as it is typed.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Поиск: ", ti),
	}
}
