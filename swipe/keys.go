package swipe

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	RevealLeading  key.Binding
	RevealTrailing key.Binding
	Close          key.Binding
	Primary        key.Binding
	Nth            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		RevealLeading:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "swipe right")),
		RevealTrailing: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "swipe left")),
		Close:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Primary:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run nearest action")),
		Nth:            key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "run action")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RevealLeading, k.RevealTrailing, k.Primary}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RevealLeading, k.RevealTrailing, k.Close},
		{k.Primary, k.Nth},
	}
}
