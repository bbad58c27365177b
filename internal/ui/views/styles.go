package views

import (
	"github.com/charmbracelet/lipgloss"

	"kbase/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Section       lipgloss.Style
	SectionFocus  lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarFocus  lipgloss.Style
	Card          lipgloss.Style
	CardFocus     lipgloss.Style
	CardTitle     lipgloss.Style
	Tag           lipgloss.Style
	TagSelected   lipgloss.Style
	SearchBox     lipgloss.Style
	SearchActive  lipgloss.Style
	AddButton     lipgloss.Style
	ClearAction   lipgloss.Style
	Notice        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		SectionFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SidebarFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Tag:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TagSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")),
		SearchBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		SearchActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Underline(true),
		AddButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		ClearAction: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// CategoryColor returns the badge color for a category
func CategoryColor(c domain.Category) string {
	switch c {
	case domain.CategoryDevelopment:
		return "33" // blue
	case domain.CategorySecurity:
		return "203" // red
	case domain.CategoryManagement:
		return "78" // green
	case domain.CategoryDocumentation:
		return "214" // yellow
	default:
		return "245"
	}
}
