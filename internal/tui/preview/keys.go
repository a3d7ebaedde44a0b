package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Press   key.Binding
	Disable key.Binding
	Preset  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle active"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle disabled"),
		),
		Preset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next preset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Preset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press, k.Disable},
		{k.Preset, k.Help, k.Quit},
	}
}
