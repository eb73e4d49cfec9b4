package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/folio/pkg/cards"
)

// cellWidth is the inner width of a one-column card.
const cellWidth = 24

var wallShades = [cards.MaxLevel + 1]string{"·", "░", "▒", "▓", "█"}

// Cards lays out cards in rows that fit in.Width.
func Cards(cs []cards.Card, in Input) string {
	if len(cs) == 0 {
		return ""
	}
	var (
		rows    []string
		row     []string
		rowCols int
	)
	maxCols := max(1, in.Width/(cellWidth+4))
	for _, c := range cs {
		cols, _ := c.Size.Span()
		cols = min(cols, maxCols)
		if rowCols+cols > maxCols && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowCols = nil, 0
		}
		row = append(row, Card(c, cols, in))
		rowCols += cols
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// Card draws one card spanning cols grid columns.
func Card(c cards.Card, cols int, in Input) string {
	p := in.Palette
	width := cols*cellWidth + (cols-1)*4
	title := IconFor(string(c.Type)).Render(p.Accent) + " " + p.Title.Render(c.Heading())

	var body []string
	switch c.Type {
	case cards.TypeGitHub:
		body = append(body, p.Secondary.Render("@"+c.Username))
		body = append(body, contributionWall(c.Username, width, p.Accent))
	case cards.TypeTwitter:
		tp := cards.FakeTwitterProfile(c.Username, c.Title)
		body = append(body, p.Text.Render(tp.Name)+" "+p.Secondary.Render("@"+tp.Username))
		body = append(body, p.Secondary.Render(wrap(tp.Bio, width)))
	case cards.TypeMastodon:
		body = append(body, p.Secondary.Render("@"+c.Username+"@"+c.Instance))
	case cards.TypeMap:
		loc := c.Location()
		body = append(body, p.Text.Render(fmt.Sprintf("%.4f, %.4f", loc.Lat, loc.Lng)))
	case cards.TypeText:
		body = append(body, p.Text.Render(wrap(c.Content, width)))
	case cards.TypeImage:
		alt := c.Alt
		if alt == "" {
			alt = "image"
		}
		body = append(body, p.Secondary.Render("["+alt+"]"))
	case cards.TypeLink:
		body = append(body, p.Secondary.Render(cards.Hostname(c.URL)))
	}
	if c.Description != "" && c.Type != cards.TypeTwitter {
		body = append(body, p.Text.Render(wrap(c.Description, width)))
	}
	if link := c.Link(); link != "" && c.Type != cards.TypeLink {
		body = append(body, p.Link.Render(truncate(link, width)))
	}

	return p.Box.Width(width + 2).Render(title + "\n" + strings.Join(body, "\n"))
}

// contributionWall draws the most recent weeks that fit in width, one row
// per weekday.
func contributionWall(username string, width int, accent lipgloss.Style) string {
	wall := cards.ContributionWall(username, cards.WallWeeks)
	weeks := min(len(wall), width)
	wall = wall[len(wall)-weeks:]

	rows := make([]string, cards.WallDays)
	for d := range rows {
		var b strings.Builder
		for w := range wall {
			b.WriteString(wallShades[wall[w][d]])
		}
		rows[d] = accent.Render(b.String())
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
