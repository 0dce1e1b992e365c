package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/swipeview/swipe"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Help   key.Binding
	Quit   key.Binding
	Accept key.Binding
	Cancel key.Binding
	Row    swipe.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply search")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Row:    swipe.DefaultKeyMap(),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Up, k.Down}, append(k.Row.ShortHelp(), k.Search, k.Help, k.Quit)...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Up, k.Down, k.Search, k.Quit}}, k.Row.FullHelp()...)
}
