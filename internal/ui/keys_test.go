package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/recetas/internal/nav"
)

func TestListBindingsLeavePrintableKeysToSearch(t *testing.T) {
	k := DefaultKeyMap()
	for _, b := range []key.Binding{k.Quit, k.Help, k.CycleTheme, k.Up, k.Down, k.PageUp, k.PageDown, k.First, k.Last, k.Open} {
		for _, name := range b.Keys() {
			if len([]rune(name)) == 1 {
				t.Fatalf("binding %q uses printable key %q", b.Help().Desc, name)
			}
		}
	}
}

func TestShortHelpPerScreen(t *testing.T) {
	k := DefaultKeyMap()

	home := k.forScreen(nav.ScreenHome).ShortHelp()
	if home[len(home)-1].Help().Key != "ctrl+c" {
		t.Fatalf("home short help should end with quit")
	}
	details := k.forScreen(nav.ScreenDetails).ShortHelp()
	if details[0].Help().Desc != "Back" {
		t.Fatalf("details short help should start with Back, got %q", details[0].Help().Desc)
	}
}

func TestBindingKeys(t *testing.T) {
	if got := bindingKeys(DefaultKeyMap().Back); got != "esc/backspace/left/q" {
		t.Fatalf("bindingKeys(Back) = %q", got)
	}
}
