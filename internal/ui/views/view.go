package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"kbase/internal/domain"
	"kbase/internal/ui/state"
)

// Screen labels
const (
	labelTitle        = "База знаний"
	labelPlaceholder  = "Поиск по статьям..."
	labelAddArticle   = "+ Добавить статью"
	labelEmptyTitle   = "Статьи не найдены"
	labelEmptyHint    = "Попробуйте изменить поисковый запрос или фильтры"
	labelSearchHint   = "Enter: применить • Esc: отменить"
	labelNoticeTitle  = "Добавление статьи"
	labelNoticeBody   = "Редактор статей пока недоступен."
	labelNoticeFooter = "Нажмите любую клавишу"
)

// ReadyMarker is printed in the header when the app runs under the e2e
// harness
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Layout Layout
	Focus  state.Pane

	Categories      []CategoryItem
	CategoryCursor  int
	Tags            []TagItem
	TagCursor       int
	HasSelectedTags bool
	Stats           Stats

	Heading          string
	Summary          string
	Articles         []domain.Article
	SelectedTags     []string
	ArticleCursor    int
	ArticleRowOffset int

	SearchQuery  string
	SearchActive bool
	SearchInput  string // rendered text input while searching

	ShowAddNotice bool
	StatusMessage string
	HelpModel     help.Model
	ShortHelp     []key.Binding
	ShowReady     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	sideRender  *SidebarRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showPreview bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, showPreview),
		sideRender:  NewSidebarRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(s ViewState) string {
	width, height := s.Width, s.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	bodyHeight := height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		r.sideRender.RenderSidebar(s, bodyHeight),
		r.renderMain(s, bodyHeight),
	)

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(s, width))
	content.WriteString("\n\n")
	content.WriteString(body)

	// Push the footer to the bottom
	if pad := bodyHeight - lipgloss.Height(body); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n\n")
	content.WriteString(r.renderFooter(s))

	finalContent := lipgloss.NewStyle().MaxHeight(height).Render(content.String())

	if s.ShowAddNotice {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderNotice(), height, width, r.styles.Notice)
	}
	return finalContent
}

// renderHeader renders the title, search box and add button on one line
func (r *Renderer) renderHeader(s ViewState, width int) string {
	logo := r.styles.Title.Render(labelTitle)
	if s.ShowReady {
		logo += " " + r.styles.Dim.Render(ReadyMarker)
	}

	var search string
	switch {
	case s.SearchActive:
		search = r.styles.SearchActive.Render(s.SearchInput)
	case s.SearchQuery != "":
		search = r.styles.Highlight.Render("/ ") + r.styles.SearchBox.Render(s.SearchQuery)
	default:
		search = r.styles.Dim.Render("/ " + labelPlaceholder)
	}

	button := r.styles.AddButton.Render(labelAddArticle)

	left := logo + "   " + search
	padding := width - lipgloss.Width(left) - lipgloss.Width(button) - 1
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + button
}

// renderMain renders the heading, the summary and the card grid
func (r *Renderer) renderMain(s ViewState, height int) string {
	lay := s.Layout
	lines := []string{
		r.styles.Title.Render(s.Heading),
		r.styles.Dim.Render(s.Summary) + r.scrollIndicator(s),
	}

	gridHeight := height - headingHeight
	if len(s.Articles) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			r.styles.Highlight.Render(labelEmptyTitle),
			r.styles.Dim.Render(labelEmptyHint),
		)
		lines = append(lines, lipgloss.Place(lay.MainWidth, gridHeight, lipgloss.Center, lipgloss.Center, empty))
		return r.styles.Main.Render(strings.Join(lines, "\n"))
	}

	cols := lay.Columns
	if cols < 1 {
		cols = 1
	}
	start := s.ArticleRowOffset * cols
	end := start + lay.VisibleRows*cols
	if end > len(s.Articles) {
		end = len(s.Articles)
	}

	var rows []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var cards []string
		for i := rowStart; i < rowStart+cols && i < end; i++ {
			focused := s.Focus == state.PaneArticles && i == s.ArticleCursor
			cards = append(cards, r.cardRender.RenderCard(s.Articles[i], focused, s.SelectedTags, lay.CardWidth, lay.CardHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	lines = append(lines, rows...)

	return r.styles.Main.Render(strings.Join(lines, "\n"))
}

// scrollIndicator shows the cursor position once the grid overflows
func (r *Renderer) scrollIndicator(s ViewState) string {
	cols := s.Layout.Columns
	if cols < 1 || len(s.Articles) == 0 {
		return ""
	}
	totalRows := (len(s.Articles) + cols - 1) / cols
	if totalRows <= s.Layout.VisibleRows {
		return ""
	}
	return r.styles.Scroll.Render(fmt.Sprintf("  (%d/%d)", s.ArticleCursor+1, len(s.Articles)))
}

// renderFooter renders the search hint, a status message or the key help
func (r *Renderer) renderFooter(s ViewState) string {
	switch {
	case s.SearchActive:
		return r.styles.Help.Render(labelSearchHint)
	case s.StatusMessage != "":
		return r.styles.StatusSuccess.Render(s.StatusMessage)
	default:
		return s.HelpModel.ShortHelpView(s.ShortHelp)
	}
}

func (r *Renderer) renderNotice() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(labelNoticeTitle),
		"",
		labelNoticeBody,
		"",
		r.styles.Dim.Render(labelNoticeFooter),
	)
}
