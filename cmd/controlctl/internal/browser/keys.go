package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Pane     key.Binding
	Disable  key.Binding
	Hide     key.Binding
	Render   key.Binding
	Dispose  key.Binding
	Baseline key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pane")),
		Disable:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle disabled")),
		Hide:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle hidden")),
		Render:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "render")),
		Dispose:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dispose")),
		Baseline: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snapshot")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Disable, k.Hide, k.Render, k.Dispose, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pane},
		{k.Disable, k.Hide, k.Render, k.Dispose},
		{k.Baseline, k.Copy, k.Help, k.Quit},
	}
}
