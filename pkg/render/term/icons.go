package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Icon is a glyph with an optional color. An empty Color means the
// theme accent.
type Icon struct {
	Glyph string
	Color lipgloss.Color
}

var icons = map[string]Icon{
	"github":     {Glyph: "◆", Color: "#a855f7"},
	"linkedin":   {Glyph: "▣"},
	"twitter":    {Glyph: "✦"},
	"x":          {Glyph: "✦"},
	"mail":       {Glyph: "✉", Color: "#14b8a6"},
	"email":      {Glyph: "✉", Color: "#14b8a6"},
	"link":       {Glyph: "↗", Color: "#ec4899"},
	"star":       {Glyph: "★"},
	"react":      {Glyph: "⚛"},
	"typescript": {Glyph: "◇"},
	"nodejs":     {Glyph: "⬢", Color: "#0d9488"},
	"python":     {Glyph: "◈"},
	"mastodon":   {Glyph: "✿"},
	"map":        {Glyph: "⌖"},
}

// IconFor returns the icon for a platform or technology name, falling back
// to the generic link icon.
func IconFor(name string) Icon {
	if ic, ok := icons[strings.ToLower(name)]; ok {
		return ic
	}
	return icons["link"]
}

// Render draws the glyph in its color, or with accent.
func (ic Icon) Render(accent lipgloss.Style) string {
	if ic.Color == "" {
		return accent.Render(ic.Glyph)
	}
	return lipgloss.NewStyle().Foreground(ic.Color).Render(ic.Glyph)
}
