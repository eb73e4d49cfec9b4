// Package theme implements the portfolio theme switch: a set of named
// color profiles, the active selection, and its persistence.
package theme

import (
	"slices"

	"github.com/matzehuels/folio/pkg/errors"
)

// Colors is a theme's palette. Values are CSS-style hex colors.
type Colors struct {
	Background    string `json:"background" yaml:"background" toml:"background"`
	Surface       string `json:"surface" yaml:"surface" toml:"surface"`
	Text          string `json:"text" yaml:"text" toml:"text"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary" toml:"textSecondary"`
	Accent        string `json:"accent" yaml:"accent" toml:"accent"`
	Border        string `json:"border" yaml:"border" toml:"border"`
}

// Theme is one selectable color profile.
type Theme struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Colors      Colors `json:"colors" yaml:"colors" toml:"colors"`
}

// Config is the themes block of a portfolio document.
type Config struct {
	Current   string  `json:"current" yaml:"current" toml:"current"`
	Available []Theme `json:"available" yaml:"available" toml:"available"`
}

// Built-in themes used when a document declares none.
var (
	Dark = Theme{
		ID:          "dark",
		Name:        "Dark",
		Description: "Deep slate background with blue accents",
		Colors: Colors{
			Background:    "#111827",
			Surface:       "#1f2937",
			Text:          "#f9fafb",
			TextSecondary: "#9ca3af",
			Accent:        "#60a5fa",
			Border:        "#374151",
		},
	}
	Minimal = Theme{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Plain white page with gray type",
		Colors: Colors{
			Background:    "#ffffff",
			Surface:       "#f9fafb",
			Text:          "#111827",
			TextSecondary: "#6b7280",
			Accent:        "#111827",
			Border:        "#e5e7eb",
		},
	}
)

// Builtin returns copies of the built-in themes, dark first.
func Builtin() []Theme { return []Theme{Dark, Minimal} }

// Find returns the theme with id.
func Find(themes []Theme, id string) (Theme, bool) {
	i := slices.IndexFunc(themes, func(t Theme) bool { return t.ID == id })
	if i < 0 {
		return Theme{}, false
	}
	return themes[i], true
}

// Validate checks theme IDs and fills empty colors from [Dark]. It returns
// the cleaned list and one error per rejected theme.
func Validate(themes []Theme) ([]Theme, []error) {
	var (
		out  []Theme
		errs []error
		seen = map[string]bool{}
	)
	for _, t := range themes {
		if err := errors.ValidateIdentifier(errors.ErrCodeInvalidTheme, "theme id", t.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[t.ID] {
			errs = append(errs, errors.New(errors.ErrCodeInvalidTheme, "duplicate theme id %q", t.ID))
			continue
		}
		seen[t.ID] = true
		if t.Name == "" {
			t.Name = t.ID
		}
		t.Colors = t.Colors.fill(Dark.Colors)
		out = append(out, t)
	}
	return out, errs
}

func (c Colors) fill(d Colors) Colors {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Colors{
		Background:    pick(c.Background, d.Background),
		Surface:       pick(c.Surface, d.Surface),
		Text:          pick(c.Text, d.Text),
		TextSecondary: pick(c.TextSecondary, d.TextSecondary),
		Accent:        pick(c.Accent, d.Accent),
		Border:        pick(c.Border, d.Border),
	}
}
