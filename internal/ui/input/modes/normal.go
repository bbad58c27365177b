package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"kbase/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// The add-article notice swallows the next key
	if ctx.NoticeVisible() {
		return []types.Action{types.DismissNoticeAction{}}, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		// Esc clears an active filter, otherwise does nothing
		if ctx.IsFiltered() {
			return []types.Action{types.ResetFiltersAction{}}, true
		}
		return nil, false

	case tea.KeyTab:
		return []types.Action{types.CycleFocusAction{}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CycleFocusAction{Reverse: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter, tea.KeySpace:
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ActivateAction{}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case "c":
		if ctx.HasSelectedTags() {
			return []types.Action{types.ClearTagsAction{}}, true
		}
		return nil, false

	case "R":
		return []types.Action{types.ResetFiltersAction{}}, true

	case "a":
		return []types.Action{types.AddArticleAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
