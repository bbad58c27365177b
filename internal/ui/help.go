package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(keys, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("База знаний: справка"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Навигация"))
	help.WriteString("\n")
	help.WriteString(row("Tab/Shift+Tab", "Переключить панель: категории, теги, статьи"))
	help.WriteString(row("↑/↓, j/k", "Вверх/вниз"))
	help.WriteString(row("←/→, h/l", "Влево/вправо по сетке статей"))
	help.WriteString(row("PgUp/PgDn", "Страница вверх/вниз"))
	help.WriteString(row("g/G", "В начало/в конец"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Фильтры"))
	help.WriteString("\n")
	help.WriteString(row("Enter/Space", "Выбрать категорию или переключить тег"))
	help.WriteString(row("/", "Поиск по заголовку и описанию"))
	help.WriteString(row("c", "Очистить выбранные теги"))
	help.WriteString(row("R, Esc", "Сбросить все фильтры"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Теги объединяются через ИЛИ, категория и поиск сужают результат."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Статьи"))
	help.WriteString("\n")
	help.WriteString(row("Enter", "Открыть статью"))
	help.WriteString(row("a", "Добавить статью"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Прочее"))
	help.WriteString("\n")
	help.WriteString(row("?", "Эта справка"))
	help.WriteString(strings.TrimSuffix(row("q, Ctrl+C", "Выход"), "\n"))

	return help.String()
}
