package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"kbase/internal/catalog"
	"kbase/internal/config"
	"kbase/internal/domain"
	"kbase/internal/eventbus"
	"kbase/internal/filter"
	"kbase/internal/ui/commands"
	"kbase/internal/ui/input"
	inputtypes "kbase/internal/ui/input/types"
	"kbase/internal/ui/logic"
	"kbase/internal/ui/state"
	"kbase/internal/ui/viewmodels"
	"kbase/internal/ui/views"
)

// Status bar texts
const (
	statusAddRequested = "Добавление статей пока недоступно"
	statusPagerFailed  = "Не удалось открыть просмотр: %v"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Catalog
	filter  *filter.State
	state   *state.AppState

	// Derived from catalog and filter on every change
	articles []domain.Article
	tags     []string

	// UI-specific state not in AppState
	width       int
	height      int
	layout      views.Layout
	help        help.Model
	keys        KeyMap
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator      // cursor and viewport handler
	renderer     *views.Renderer       // view renderer
	viewModel    *viewmodels.ViewModel // view model for rendering
	inputHandler *input.Handler        // input handling
	helpRender   *HelpRenderer
	pager        *Pager
	executor     *commands.Executor // bus side effects

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over an immutable catalog
func NewModel(bus eventbus.EventBus, cfg *config.Config, c *catalog.Catalog) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      c,
		filter:       filter.New(),
		state:        appState,
		tags:         c.TagUniverse(),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UI.ShowContentPreview),
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
		pager:        NewPager(),
	}

	// Start in the configured category
	start := cfg.StartCategory()
	m.filter.SetSelectedCategory(start)
	for i, cat := range c.Categories() {
		if cat == start {
			m.state.CategoryCursor = i
		}
	}

	m.executor = commands.NewExecutor(appState, m.filter, bus)
	m.viewModel = viewmodels.NewViewModel(appState, c, m.filter, m.inputHandler.Input())
	m.viewModel.SetHelp(m.help, m.keys.ShortHelp())
	m.relayout()
	m.refresh()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetReadyMarker makes the header carry the e2e ready marker
func (m *Model) SetReadyMarker(show bool) {
	m.viewModel.SetShowReady(show)
}

// Articles returns the current filtered list
func (m *Model) Articles() []domain.Article {
	return m.articles
}

// Filter exposes the filter state
func (m *Model) Filter() *filter.State {
	return m.filter
}

// State exposes the presentation state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys.ShortHelp())
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:     m.state,
			Filter:    m.filter,
			PaneSizes: m.paneSizes(),
		}

		prevMode := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Remember the query so Esc can restore it
		if prevMode == inputtypes.ModeNormal && m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.state.SearchBackup = m.filter.SearchQuery()
		}

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Загрузка..."
	}

	m.viewModel.SetDimensions(m.width, m.height, m.layout)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt())

	return m.renderer.Render(m.viewModel.BuildViewState(m.articles))
}

// relayout recomputes the grid geometry and keeps the cursor on screen
func (m *Model) relayout() {
	m.layout = views.ComputeLayout(m.width, m.height, m.config.Columns(), m.config.UI.ShowContentPreview)
	m.navigator.UpdateState(m.layout.Columns, m.layout.VisibleRows)
	m.state.ArticleRowOffset = m.navigator.EnsureVisible(m.state.ArticleCursor, m.state.ArticleRowOffset, len(m.articles))
}

// refresh recomputes the filtered list from the catalog
func (m *Model) refresh() {
	m.articles = m.filter.FilteredArticles(m.catalog)
}

// paneSizes returns the number of items each pane can move over. The tag
// pane has one extra slot for the clear action while tags are selected.
func (m *Model) paneSizes() map[state.Pane]int {
	tagSlots := len(m.tags)
	if len(m.filter.SelectedTags()) > 0 {
		tagSlots++
	}
	return map[state.Pane]int{
		state.PaneCategories: len(m.catalog.Categories()),
		state.PaneTags:       tagSlots,
		state.PaneArticles:   len(m.articles),
	}
}

// applyFilter mutates the filter state, recomputes the list and announces
// the change
func (m *Model) applyFilter(mutate func(f *filter.State)) {
	mutate(m.filter)
	m.refresh()
	m.state.ResetArticles()

	// The clear action disappears with the last selected tag
	if last := m.paneSizes()[state.PaneTags] - 1; m.state.TagCursor > last {
		m.state.TagCursor = last
	}

	m.executor.ExecuteFilterChanged(len(m.articles))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	slog.Debug("processAction", "action", fmt.Sprintf("%T", action))
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.CycleFocusAction:
		m.state.CycleFocus(a.Reverse)

	case inputtypes.ActivateAction:
		return m.activate()

	case inputtypes.ClearTagsAction:
		m.applyFilter(func(f *filter.State) { f.ClearTags() })

	case inputtypes.ResetFiltersAction:
		m.applyFilter(func(f *filter.State) { f.Reset() })
		m.state.CategoryCursor = 0
		m.state.TagCursor = 0

	case inputtypes.UpdateTextAction:
		m.applyFilter(func(f *filter.State) { f.SetSearchQuery(a.Text) })

	case inputtypes.SubmitTextAction:
		if a.Text != m.filter.SearchQuery() {
			m.applyFilter(func(f *filter.State) { f.SetSearchQuery(a.Text) })
		}
		m.state.SearchBackup = ""

	case inputtypes.CancelTextAction:
		backup := m.state.SearchBackup
		m.applyFilter(func(f *filter.State) { f.SetSearchQuery(backup) })
		m.state.SearchBackup = ""

	case inputtypes.AddArticleAction:
		return m.executor.ExecuteRequestAddArticle()

	case inputtypes.DismissNoticeAction:
		m.state.ShowAddNotice = false
		return m.setStatus(statusAddRequested)

	case inputtypes.ToggleHelpAction:
		return m.showHelpPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// navigate moves the cursor of the focused pane
func (m *Model) navigate(direction string) {
	total := m.paneSizes()[m.state.Focus]
	if m.state.Focus == state.PaneArticles {
		m.state.ArticleCursor = m.navigator.MoveInGrid(m.state.ArticleCursor, total, direction)
		m.state.ArticleRowOffset = m.navigator.EnsureVisible(m.state.ArticleCursor, m.state.ArticleRowOffset, total)
		return
	}
	m.state.SetCursor(m.navigator.MoveInList(m.state.Cursor(), total, direction))
}

// activate applies the item under the cursor of the focused pane
func (m *Model) activate() tea.Cmd {
	switch m.state.Focus {
	case state.PaneCategories:
		cats := m.catalog.Categories()
		if i := m.state.CategoryCursor; i >= 0 && i < len(cats) {
			m.applyFilter(func(f *filter.State) { f.SetSelectedCategory(cats[i]) })
		}

	case state.PaneTags:
		i := m.state.TagCursor
		switch {
		case i >= 0 && i < len(m.tags):
			tag := m.tags[i]
			m.applyFilter(func(f *filter.State) { f.ToggleTag(tag) })
		case i == len(m.tags):
			m.applyFilter(func(f *filter.State) { f.ClearTags() })
		}

	case state.PaneArticles:
		if i := m.state.ArticleCursor; i >= 0 && i < len(m.articles) {
			return m.openArticle(m.articles[i])
		}
	}
	return nil
}

// openArticle returns a command that shows the article using ov pager
func (m *Model) openArticle(a domain.Article) tea.Cmd {
	m.executor.ExecuteOpenArticle(a)
	doc := ArticleDocument(a)
	return func() tea.Msg {
		if m.program == nil {
			return articlePagerMsg{articleID: a.ID, err: errNoProgram}
		}
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(doc)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return articlePagerMsg{articleID: a.ID, err: err}
	}
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRender.RenderHelpContent()
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// setStatus shows a status message that clears itself
func (m *Model) setStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(statusTimeout, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg processes messages that are not key presses
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(e.Message)
		}
		return m, nil

	case articlePagerMsg:
		if msg.err != nil {
			slog.Warn("article pager failed", "id", msg.articleID, "err", msg.err)
			text := fmt.Sprintf(statusPagerFailed, msg.err)
			if m.bus == nil {
				return m, m.setStatus(text)
			}
			// The status comes back through EventMsg
			return m, m.executor.ExecuteReportError(text, msg.err)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			slog.Warn("help pager failed", "err", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.RenderingPaused = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		m.state.RenderingPaused = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}
