package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"kbase/internal/catalog"
	"kbase/internal/domain"
	"kbase/internal/filter"
	"kbase/internal/ui/input/types"
	"kbase/internal/ui/state"
	"kbase/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	catalog          *catalog.Catalog
	filter           *filter.State
	layout           views.Layout
	width            int
	height           int
	help             help.Model
	shortHelp        []key.Binding
	showReady        bool
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, c *catalog.Catalog, f *filter.State, textInput *textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		catalog:          c,
		filter:           f,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions and grid layout
func (vm *ViewModel) SetDimensions(width, height int, layout views.Layout) {
	vm.width = width
	vm.height = height
	vm.layout = layout
}

// SetHelp sets the help model and the bindings shown in the footer
func (vm *ViewModel) SetHelp(helpModel help.Model, bindings []key.Binding) {
	vm.help = helpModel
	vm.shortHelp = bindings
}

// SetShowReady toggles the e2e ready marker
func (vm *ViewModel) SetShowReady(show bool) {
	vm.showReady = show
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// BuildViewState creates a ViewState for rendering from the given
// filtered list
func (vm *ViewModel) BuildViewState(articles []domain.Article) views.ViewState {
	return views.ViewState{
		Width:  vm.width,
		Height: vm.height,
		Layout: vm.layout,
		Focus:  vm.state.Focus,

		Categories:      vm.categoryItems(),
		CategoryCursor:  vm.state.CategoryCursor,
		Tags:            vm.tagItems(),
		TagCursor:       vm.state.TagCursor,
		HasSelectedTags: len(vm.filter.SelectedTags()) > 0,
		Stats: views.Stats{
			Total:      vm.catalog.Len(),
			Found:      len(articles),
			Categories: len(domain.Categories()),
		},

		Heading:          vm.filter.Heading(),
		Summary:          vm.filter.Summary(len(articles)),
		Articles:         articles,
		SelectedTags:     vm.filter.SelectedTags(),
		ArticleCursor:    vm.state.ArticleCursor,
		ArticleRowOffset: vm.state.ArticleRowOffset,

		SearchQuery:  vm.filter.SearchQuery(),
		SearchActive: vm.inputTransformer.IsActive(),
		SearchInput:  vm.inputTransformer.GetInputText(),

		ShowAddNotice: vm.state.ShowAddNotice,
		StatusMessage: vm.state.StatusMessage,
		HelpModel:     vm.help,
		ShortHelp:     vm.shortHelp,
		ShowReady:     vm.showReady,
	}
}

func (vm *ViewModel) categoryItems() []views.CategoryItem {
	selected := vm.filter.SelectedCategory()
	counts := vm.catalog.CategoryCounts()
	items := make([]views.CategoryItem, 0, len(counts))
	for _, cc := range counts {
		items = append(items, views.CategoryItem{
			Category: cc.Category,
			Count:    cc.Count,
			Selected: cc.Category == selected,
		})
	}
	return items
}

func (vm *ViewModel) tagItems() []views.TagItem {
	universe := vm.catalog.TagUniverse()
	items := make([]views.TagItem, 0, len(universe))
	for _, tag := range universe {
		items = append(items, views.TagItem{
			Name:     tag,
			Selected: vm.filter.IsTagSelected(tag),
		})
	}
	return items
}
