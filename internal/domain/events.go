package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded       EventType = "CatalogLoaded"
	EventFilterChanged       EventType = "FilterChanged"
	EventArticleOpened       EventType = "ArticleOpened"
	EventAddArticleRequested EventType = "AddArticleRequested"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog is ready
type CatalogLoadedEvent struct {
	Source   string // "embedded" or a file path
	Articles int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// FilterChangedEvent is emitted after every change to the filter state
type FilterChangedEvent struct {
	SearchQuery      string
	SelectedCategory Category
	SelectedTags     []string
	Matched          int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// ArticleOpenedEvent is emitted when an article is opened in the reader
type ArticleOpenedEvent struct {
	ArticleID int
	Title     string
}

func (e ArticleOpenedEvent) Type() EventType { return EventArticleOpened }

// AddArticleRequestedEvent is emitted by the add-article action.
// Nothing creates articles; the event only records that it was asked for.
type AddArticleRequestedEvent struct{}

func (e AddArticleRequestedEvent) Type() EventType { return EventAddArticleRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Created bool // true when defaults were written on first run
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
