package theme

import "github.com/charmbracelet/lipgloss"

// Palette is a theme rendered as terminal styles.
type Palette struct {
	Page      lipgloss.Style
	Surface   lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Link      lipgloss.Style
	Border    lipgloss.Style
	Box       lipgloss.Style
	DotActive lipgloss.Style
	Dot       lipgloss.Style
}

// Palette derives terminal styles from t's colors.
func (t Theme) Palette() Palette {
	c := t.Colors.fill(Dark.Colors)
	bg := lipgloss.Color(c.Background)
	surface := lipgloss.Color(c.Surface)
	text := lipgloss.Color(c.Text)
	secondary := lipgloss.Color(c.TextSecondary)
	accent := lipgloss.Color(c.Accent)
	border := lipgloss.Color(c.Border)

	return Palette{
		Page:      lipgloss.NewStyle().Background(bg).Foreground(text),
		Surface:   lipgloss.NewStyle().Background(surface).Foreground(text),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(text),
		Text:      lipgloss.NewStyle().Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Link:      lipgloss.NewStyle().Foreground(accent).Underline(true),
		Border:    lipgloss.NewStyle().Foreground(border),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		DotActive: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dot:       lipgloss.NewStyle().Foreground(secondary),
	}
}
