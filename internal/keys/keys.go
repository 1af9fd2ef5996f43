// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the preview application.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Simulated interaction states
	Hover   key.Binding
	Press   key.Binding
	Disable key.Binding
	Toggle  key.Binding
	Reset   key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous panel"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next panel"),
		),

		// Interaction states
		Hover: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "simulate hover"),
		),
		Press: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "simulate press"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "simulate disabled"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle active"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset states"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                                   // Navigation
		{k.Hover, k.Press, k.Disable, k.Toggle, k.Reset}, // States
		{k.Help, k.Quit},                                 // General
	}
}
