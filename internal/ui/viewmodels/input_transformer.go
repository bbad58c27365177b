package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"kbase/internal/ui/input/types"
)

// InputTransformer turns the input handler state into view text
type InputTransformer struct {
	mode      types.Mode
	prompt    string
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and its prompt
func (it *InputTransformer) SetMode(mode types.Mode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// IsActive returns true while a text mode owns the keyboard
func (it *InputTransformer) IsActive() bool {
	return it.mode != types.ModeNormal && it.textInput != nil
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if !it.IsActive() {
		return ""
	}
	return it.prompt + it.textInput.View()
}
