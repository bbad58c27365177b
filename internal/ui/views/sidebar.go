package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kbase/internal/domain"
	"kbase/internal/ui/state"
)

// Sidebar labels
const (
	labelCategories  = "Категории"
	labelTags        = "Теги"
	labelClearTags   = "Очистить фильтры"
	labelStats       = "Статистика"
	labelTotal       = "Всего статей"
	labelFound       = "Найдено"
	labelCategoryNum = "Категорий"
)

// CategoryItem is one row of the category list
type CategoryItem struct {
	Category domain.Category
	Count    int
	Selected bool
}

// TagItem is one badge of the tag list
type TagItem struct {
	Name     string
	Selected bool
}

// Stats holds the numbers shown in the statistics block
type Stats struct {
	Total      int
	Found      int
	Categories int
}

// SidebarRenderer handles rendering of the filter sidebar
type SidebarRenderer struct {
	styles *Styles
}

// NewSidebarRenderer creates a new sidebar renderer
func NewSidebarRenderer(styles *Styles) *SidebarRenderer {
	return &SidebarRenderer{styles: styles}
}

// RenderSidebar renders categories, tags and statistics as one bordered box
func (r *SidebarRenderer) RenderSidebar(s ViewState, height int) string {
	inner := SidebarWidth - 4

	sections := []string{
		r.renderCategories(s, inner),
		r.renderTags(s, inner),
		r.renderStats(s.Stats),
	}

	style := r.styles.Sidebar
	if s.Focus != state.PaneArticles {
		style = r.styles.SidebarFocus
	}
	style = style.Width(SidebarWidth - 2)
	if height > 2 {
		style = style.MaxHeight(height)
	}
	return style.Render(strings.Join(sections, "\n\n"))
}

func (r *SidebarRenderer) sectionTitle(title string, focused bool) string {
	if focused {
		return r.styles.SectionFocus.Render(title)
	}
	return r.styles.Section.Render(title)
}

func (r *SidebarRenderer) renderCategories(s ViewState, width int) string {
	focused := s.Focus == state.PaneCategories
	lines := []string{r.sectionTitle(labelCategories, focused)}

	for i, item := range s.Categories {
		marker := "  "
		if item.Selected {
			marker = "● "
		}
		count := fmt.Sprintf("%d", item.Count)
		name := Truncate(item.Category.String(), width-len(marker)-len(count)-1)
		gap := width - lipgloss.Width(marker) - lipgloss.Width(name) - len(count)
		if gap < 1 {
			gap = 1
		}
		line := marker + name + strings.Repeat(" ", gap) + count

		switch {
		case focused && i == s.CategoryCursor:
			line = r.styles.SelectionBg.Render(line)
		case item.Selected:
			line = r.styles.Highlight.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderTags lays tag badges out in wrapped rows. The cursor walks the
// badges in order and lands on the clear action after the last one.
func (r *SidebarRenderer) renderTags(s ViewState, width int) string {
	focused := s.Focus == state.PaneTags
	lines := []string{r.sectionTitle(labelTags, focused)}

	var row strings.Builder
	rowWidth := 0
	for i, tag := range s.Tags {
		label := tag.Name
		if tag.Selected {
			label = "✓" + label
		}
		style := r.styles.Tag
		if tag.Selected {
			style = r.styles.TagSelected
		}
		if focused && i == s.TagCursor {
			style = style.Underline(true).Bold(true)
		}
		badge := style.Render("[" + label + "]")
		w := lipgloss.Width(badge)

		if rowWidth > 0 && rowWidth+1+w > width {
			lines = append(lines, row.String())
			row.Reset()
			rowWidth = 0
		}
		if rowWidth > 0 {
			row.WriteString(" ")
			rowWidth++
		}
		row.WriteString(badge)
		rowWidth += w
	}
	if rowWidth > 0 {
		lines = append(lines, row.String())
	}

	if s.HasSelectedTags {
		action := "✕ " + labelClearTags
		if focused && s.TagCursor == len(s.Tags) {
			action = r.styles.SelectionBg.Render(action)
		} else {
			action = r.styles.ClearAction.Render(action)
		}
		lines = append(lines, action)
	}
	return strings.Join(lines, "\n")
}

func (r *SidebarRenderer) renderStats(st Stats) string {
	lines := []string{
		r.sectionTitle(labelStats, false),
		fmt.Sprintf("%s: %d", labelTotal, st.Total),
		fmt.Sprintf("%s: %d", labelFound, st.Found),
		fmt.Sprintf("%s: %d", labelCategoryNum, st.Categories),
	}
	return strings.Join(lines, "\n")
}
