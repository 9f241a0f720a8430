package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo key bindings. Scrolling keys are handled by the
// viewport.
type KeyMap struct {
	NextMode, PrevMode key.Binding
	Position           key.Binding
	Ambiguity          key.Binding
	Theme              key.Binding
	Help               key.Binding
	Quit               key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMode:  key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next mode")),
		PrevMode:  key.NewBinding(key.WithKeys("shift+tab", "N"), key.WithHelp("shift+tab", "prev mode")),
		Position:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "ellipsis side")),
		Ambiguity: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "ambiguous width")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "plain theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.Help, k.NextMode, k.Position, k.Ambiguity, k.Theme, k.Quit}
}

func (k KeyMap) fullHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.PrevMode, k.Position, k.Ambiguity, k.Theme, k.Help, k.Quit}
}
