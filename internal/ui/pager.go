package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"kbase/internal/domain"
	"kbase/internal/ui/views"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text in the ov pager, lending it the terminal
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new Pager instance
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show runs ov over content until the user quits it
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ArticleDocument renders the full text of an article for the reader
func ArticleDocument(a domain.Article) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))
	badgeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(views.CategoryColor(a.Category)))
	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	tagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n")

	meta := a.Author
	if date := views.FormatDate(a.LastUpdated); date != "" {
		meta += " • " + date
	}
	b.WriteString(badgeStyle.Render("● "+a.Category.String()) + "  " + metaStyle.Render(meta))
	b.WriteString("\n")

	if len(a.Tags) > 0 {
		tags := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			tags[i] = "#" + t
		}
		b.WriteString(tagStyle.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.Description)
	b.WriteString("\n\n")
	b.WriteString(a.Content)
	b.WriteString("\n")
	return b.String()
}
