package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/matzehuels/folio/pkg/nav"
)

type keyMap struct {
	next     key.Binding
	prev     key.Binding
	scrollDn key.Binding
	scrollUp key.Binding
	first    key.Binding
	last     key.Binding
	theme    key.Binding
	quit     key.Binding
}

var keys = keyMap{
	next: key.NewBinding(
		key.WithKeys("down", "pgdown", " "),
		key.WithHelp("↓/pgdn", "next"),
	),
	prev: key.NewBinding(
		key.WithKeys("up", "pgup"),
		key.WithHelp("↑/pgup", "previous"),
	),
	scrollDn: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "scroll down"),
	),
	scrollUp: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "scroll up"),
	),
	first: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "first"),
	),
	last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "last"),
	),
	theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// navKey maps a key press to a navigation key for the disambiguator.
func navKey(s string) nav.Key {
	switch s {
	case "down", " ":
		return nav.KeyDown
	case "pgdown":
		return nav.KeyPageDown
	case "up":
		return nav.KeyUp
	case "pgup":
		return nav.KeyPageUp
	}
	return nav.KeyOther
}
