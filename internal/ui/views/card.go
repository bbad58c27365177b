package views

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kbase/internal/domain"
)

// CardRenderer handles rendering of article cards
type CardRenderer struct {
	styles      *Styles
	showPreview bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, showPreview bool) *CardRenderer {
	return &CardRenderer{
		styles:      styles,
		showPreview: showPreview,
	}
}

// RenderCard renders one article as a bordered card of the given outer size
func (r *CardRenderer) RenderCard(a domain.Article, focused bool, selectedTags []string, width, height int) string {
	inner := width - 4 // border and padding
	if inner < 1 {
		inner = 1
	}

	var lines []string

	lines = append(lines, r.styles.CardTitle.Render(Truncate(a.Title, inner)))

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(CategoryColor(a.Category))).
		Render(Truncate("● "+a.Category.String(), inner))
	lines = append(lines, badge)

	desc := padLines(ClampLines(a.Description, inner, descriptionRows), descriptionRows)
	for _, l := range desc {
		lines = append(lines, r.styles.Dim.Render(l))
	}

	lines = append(lines, r.renderTags(a.Tags, selectedTags, inner))

	if r.showPreview {
		lines = append(lines, r.styles.Scroll.Render(Truncate(firstLine(a.Content), inner)))
	}

	meta := a.Author
	if date := FormatDate(a.LastUpdated); date != "" {
		meta += " • " + date
	}
	lines = append(lines, r.styles.Status.Render(Truncate(meta, inner)))

	style := r.styles.Card
	if focused {
		style = r.styles.CardFocus
	}
	return style.
		Width(width - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

// renderTags renders the tag line, highlighting tags that are part of the
// active filter and cutting off what does not fit
func (r *CardRenderer) renderTags(tags, selected []string, width int) string {
	var b strings.Builder
	used := 0
	for i, tag := range tags {
		label := "#" + tag
		w := lipgloss.Width(label)
		if i > 0 {
			w++
		}
		if used+w > width {
			if used < width {
				b.WriteString(r.styles.Tag.Render("…"))
			}
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		style := r.styles.Tag
		if slices.Contains(selected, tag) {
			style = r.styles.TagSelected
		}
		b.WriteString(style.Render(label))
		used += w
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
