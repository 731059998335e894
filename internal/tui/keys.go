package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings that work on every scene
type keyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Back  key.Binding
	Start key.Binding
}

var globalKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
}

// shortHelp lists the bindings shown in the status bar
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Help, k.Quit}
}
