package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render/markdown"
)

// Profile draws the name, tagline, links and bento cards.
func Profile(in Input) string {
	p, c := in.Doc.Profile, in.Palette
	var b strings.Builder

	b.WriteString(c.Title.Render(p.Name))
	if p.Tagline != "" {
		b.WriteString("\n" + c.Secondary.Render(wrap(p.Tagline, in.Width)))
	}
	if p.Email != "" {
		b.WriteString("\n" + IconFor("mail").Render(c.Accent) + " " + c.Text.Render(p.Email))
	}
	if len(p.Links) > 0 {
		links := make([]string, len(p.Links))
		for i, l := range p.Links {
			links[i] = IconFor(l.Platform).Render(c.Accent) + " " + c.Link.Render(l.Platform)
		}
		b.WriteString("\n\n" + strings.Join(links, "   "))
	}
	if grid := Cards(in.Doc.Cards(), in); grid != "" {
		b.WriteString("\n\n" + grid)
	}
	return b.String()
}

// Intro draws the introduction markdown.
func Intro(in Input) string {
	if strings.TrimSpace(in.Doc.Intro.Markdown) == "" {
		return in.Palette.Secondary.Render("No introduction yet.")
	}
	return markdown.Terminal(in.Doc.Intro.Markdown, in.Width, MarkdownStyles(in))
}

// MarkdownStyles maps the palette onto markdown styles.
func MarkdownStyles(in Input) markdown.Styles {
	c := in.Palette
	return markdown.Styles{
		Heading:  c.Title,
		Text:     c.Text,
		Strong:   c.Text.Bold(true),
		Emphasis: c.Text.Italic(true),
		Code:     c.Accent,
		Link:     c.Link,
		Quote:    c.Secondary,
		Rule:     c.Border,
	}
}

// Projects draws each project with its star count when known.
func Projects(in Input) string {
	c := in.Palette
	items := make([]string, 0, len(in.Doc.Projects))
	for _, p := range in.Doc.Projects {
		head := c.Title.Render(p.Name)
		if n, ok := in.Stars[p.URL]; ok {
			head += "  " + IconFor("star").Render(c.Accent) + " " + c.Accent.Render(fmt.Sprint(n))
		}
		lines := []string{head}
		if p.Description != "" {
			lines = append(lines, c.Text.Render(wrap(p.Description, in.Width)))
		}
		if len(p.Tech) > 0 {
			lines = append(lines, c.Secondary.Render(strings.Join(p.Tech, " · ")))
		}
		if p.URL != "" {
			lines = append(lines, c.Link.Render(p.URL))
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return section("Projects", items, in)
}

// Experiences draws the work history.
func Experiences(in Input) string {
	c := in.Palette
	items := make([]string, 0, len(in.Doc.Experiences))
	for _, e := range in.Doc.Experiences {
		lines := []string{
			c.Title.Render(e.Position) + c.Secondary.Render(" @ ") + c.Accent.Render(e.Company),
			c.Secondary.Render(e.Period),
		}
		if e.Description != "" {
			lines = append(lines, c.Text.Render(wrap(e.Description, in.Width)))
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return section("Experience", items, in)
}

// Education draws degrees and institutions.
func Education(in Input) string {
	c := in.Palette
	items := make([]string, 0, len(in.Doc.Education))
	for _, e := range in.Doc.Education {
		lines := []string{
			c.Title.Render(e.Degree),
			c.Accent.Render(e.Institution) + c.Secondary.Render("  "+e.Period),
		}
		if e.Description != "" {
			lines = append(lines, c.Text.Render(wrap(e.Description, in.Width)))
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	return section("Education", items, in)
}

// TechStacks draws technologies by proficiency, highest first.
func TechStacks(in Input) string {
	c := in.Palette
	stacks := in.Doc.SortedTechStacks()
	nameW := 0
	for _, t := range stacks {
		nameW = max(nameW, lipgloss.Width(t.Name))
	}
	items := make([]string, 0, len(stacks))
	for _, t := range stacks {
		name := lipgloss.NewStyle().Width(nameW).Render(t.Name)
		items = append(items, fmt.Sprintf("%s %s  %s  %s",
			IconFor(t.Icon).Render(c.Accent), c.Text.Render(name),
			c.Accent.Render(Rating(t)), c.Secondary.Render(t.Label())))
	}
	if len(items) == 0 {
		return section("Tech Stack", nil, in)
	}
	return c.Title.Render("Tech Stack") + "\n\n" + strings.Join(items, "\n")
}

// Rating draws a proficiency as filled stars out of four.
func Rating(t profile.TechStack) string {
	n := t.Level() + 1
	return strings.Repeat("★", n) + strings.Repeat("☆", profile.MaxProficiency+1-n)
}

func section(title string, items []string, in Input) string {
	head := in.Palette.Title.Render(title)
	if len(items) == 0 {
		return head + "\n\n" + in.Palette.Secondary.Render("Nothing here yet.")
	}
	return head + "\n\n" + strings.Join(items, "\n\n")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
