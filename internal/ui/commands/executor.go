package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"kbase/internal/domain"
	"kbase/internal/eventbus"
	"kbase/internal/filter"
	"kbase/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, f *filter.State, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Filter: f,
			Bus:    bus,
		},
	}
}

// ExecuteFilterChanged creates and executes a filter changed command
func (e *Executor) ExecuteFilterChanged(matched int) tea.Cmd {
	cmd := NewFilterChangedCommand(e.ctx, matched)
	return cmd.Execute()
}

// ExecuteOpenArticle creates and executes an open article command
func (e *Executor) ExecuteOpenArticle(a domain.Article) tea.Cmd {
	cmd := NewOpenArticleCommand(e.ctx, a)
	return cmd.Execute()
}

// ExecuteRequestAddArticle creates and executes an add article command
func (e *Executor) ExecuteRequestAddArticle() tea.Cmd {
	cmd := NewRequestAddArticleCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteReportError creates and executes a report error command
func (e *Executor) ExecuteReportError(message string, err error) tea.Cmd {
	cmd := NewReportErrorCommand(e.ctx, message, err)
	return cmd.Execute()
}
