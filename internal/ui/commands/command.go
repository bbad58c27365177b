package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"kbase/internal/domain"
	"kbase/internal/eventbus"
	"kbase/internal/filter"
	"kbase/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Filter *filter.State
	Bus    eventbus.EventBus
}

func (c *CommandContext) publish(e eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

// FilterChangedCommand announces the filter state after a change
type FilterChangedCommand struct {
	ctx     *CommandContext
	matched int
}

// NewFilterChangedCommand creates a new filter changed command
func NewFilterChangedCommand(ctx *CommandContext, matched int) *FilterChangedCommand {
	return &FilterChangedCommand{
		ctx:     ctx,
		matched: matched,
	}
}

// Execute publishes the current filter state
func (c *FilterChangedCommand) Execute() tea.Cmd {
	if c.ctx.Filter != nil {
		c.ctx.publish(c.ctx.Filter.Event(c.matched))
	}
	return nil
}

// OpenArticleCommand records that an article was opened
type OpenArticleCommand struct {
	ctx     *CommandContext
	article domain.Article
}

// NewOpenArticleCommand creates a new open article command
func NewOpenArticleCommand(ctx *CommandContext, a domain.Article) *OpenArticleCommand {
	return &OpenArticleCommand{
		ctx:     ctx,
		article: a,
	}
}

// Execute publishes the opened article
func (c *OpenArticleCommand) Execute() tea.Cmd {
	c.ctx.publish(eventbus.ArticleOpenedEvent{
		ArticleID: c.article.ID,
		Title:     c.article.Title,
	})
	return nil
}

// RequestAddArticleCommand shows the add-article notice. No article is
// created.
type RequestAddArticleCommand struct {
	ctx *CommandContext
}

// NewRequestAddArticleCommand creates a new add article command
func NewRequestAddArticleCommand(ctx *CommandContext) *RequestAddArticleCommand {
	return &RequestAddArticleCommand{ctx: ctx}
}

// Execute publishes the request and raises the notice
func (c *RequestAddArticleCommand) Execute() tea.Cmd {
	c.ctx.publish(eventbus.AddArticleRequestedEvent{})
	c.ctx.State.ShowAddNotice = true
	return nil
}

// ReportErrorCommand surfaces a failure in the status bar
type ReportErrorCommand struct {
	ctx     *CommandContext
	message string
	err     error
}

// NewReportErrorCommand creates a new report error command
func NewReportErrorCommand(ctx *CommandContext, message string, err error) *ReportErrorCommand {
	return &ReportErrorCommand{
		ctx:     ctx,
		message: message,
		err:     err,
	}
}

// Execute publishes an ErrorEvent. Subscribers forward it to the program,
// which shows the message in the status bar.
func (c *ReportErrorCommand) Execute() tea.Cmd {
	c.ctx.publish(eventbus.ErrorEvent{Message: c.message, Err: c.err})
	return nil
}
