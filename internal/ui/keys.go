package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/recetas/internal/nav"
)

// keyMap defines all keyboard bindings for the application.
// Printable keys on the list screen belong to the search field, so list
// bindings only use arrows, control keys and enter.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// List
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
	Open     key.Binding

	// Detail
	Back         key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	DetailHelp   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "Previous recipe"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "Next recipe"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First recipe"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last recipe"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open recipe"),
		),

		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "left", "q"),
			key.WithHelp("esc", "Back"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		DetailHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
	}
}

// screenKeys adapts keyMap to help.KeyMap for one screen.
type screenKeys struct {
	keys   keyMap
	screen nav.Screen
}

var _ help.KeyMap = screenKeys{}

func (k keyMap) forScreen(s nav.Screen) screenKeys {
	return screenKeys{keys: k, screen: s}
}

// ShortHelp returns key bindings for the footer.
func (s screenKeys) ShortHelp() []key.Binding {
	k := s.keys
	if s.screen == nav.ScreenDetails {
		return []key.Binding{k.Back, k.ScrollDown, k.ScrollUp, k.DetailHelp, k.Quit}
	}
	return []key.Binding{k.Up, k.Down, k.Open, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per column.
func (s screenKeys) FullHelp() [][]key.Binding {
	k := s.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.First, k.Last, k.Open},
		{k.Back, k.ScrollUp, k.ScrollDown, k.Top, k.Bottom, k.HalfPageUp, k.HalfPageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
