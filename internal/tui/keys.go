package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	Blue   key.Binding
	Purple key.Binding
	Orange key.Binding
	Dark   key.Binding

	Up   key.Binding
	Down key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dark, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Blue, k.Purple, k.Orange, k.Dark},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Blue: key.NewBinding(
			key.WithKeys("1", "b"),
			key.WithHelp("1/b", "blue theme"),
		),
		Purple: key.NewBinding(
			key.WithKeys("2", "p"),
			key.WithHelp("2/p", "purple theme"),
		),
		Orange: key.NewBinding(
			key.WithKeys("3", "o"),
			key.WithHelp("3/o", "orange theme"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dark"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown", " "),
			key.WithHelp("↓/j", "scroll down"),
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

// viewportKeys keeps scrolling off the letters used for themes and dark mode.
func viewportKeys() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.PageUp = key.NewBinding(key.WithKeys("pgup"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown", " "))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	return km
}
