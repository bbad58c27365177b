package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

type CycleFocusAction struct {
	Reverse bool
}

func (a CycleFocusAction) Type() string { return "cycle_focus" }

// ActivateAction acts on the item under the cursor: selects a category,
// toggles a tag or opens an article
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Filter actions
type ClearTagsAction struct{}

func (a ClearTagsAction) Type() string { return "clear_tags" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type AddArticleAction struct{}

func (a AddArticleAction) Type() string { return "add_article" }

type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
