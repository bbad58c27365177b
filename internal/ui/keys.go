package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the footer and the help pager.
// Dispatch itself happens in the input modes.
type KeyMap struct {
	Move      key.Binding
	Focus     key.Binding
	Open      key.Binding
	Search    key.Binding
	ClearTags key.Binding
	Reset     key.Binding
	Add       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the bindings of normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("←↓↑→", "навигация"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "панель"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "выбрать"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		ClearTags: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "очистить теги"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R", "esc"),
			key.WithHelp("R", "сбросить"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "добавить"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "справка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Focus, k.Open, k.Search, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Focus, k.Open},
		{k.Search, k.ClearTags, k.Reset},
		{k.Add, k.Help, k.Quit},
	}
}
