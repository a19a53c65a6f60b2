package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the terminal surface
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Close      key.Binding
	OpenSample key.Binding
	OpenCode   key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings. Letters are free for the
// search field, so list navigation uses arrows and the detail pane owns o/c.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		OpenSample: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "preview"),
		),
		OpenCode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "view code"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Close, k.OpenSample, k.OpenCode, k.Quit},
	}
}

// detailHelp is the help shown while the detail pane is open
func (k KeyMap) detailHelp() []key.Binding {
	return []key.Binding{k.OpenSample, k.OpenCode, k.Close, k.Quit}
}
