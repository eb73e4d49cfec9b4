package resume

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/matzehuels/folio/pkg/profile"
)

// Page geometry in SVG user units (points); A4 width.
const (
	pageWidth  = 595.0
	margin     = 48.0
	lineHeight = 16.0
	wrapCols   = 88
)

type svgLine struct {
	text   string
	size   float64
	weight string
	color  string
	gap    float64
}

// SVG renders the resume as a single tall page suitable for PDF and PNG
// conversion.
func SVG(doc *profile.Document, opts Options) []byte {
	m := build(doc, opts)
	c := opts.theme().Colors

	var lines []svgLine
	add := func(text string, size float64, weight, color string, gap float64) {
		lines = append(lines, svgLine{text, size, weight, color, gap})
	}
	addWrapped := func(text string, size float64, color string) {
		for _, l := range strings.Split(wordwrap.String(text, wrapCols), "\n") {
			add(l, size, "normal", color, 0)
		}
	}

	if m.Name != "" {
		add(m.Name, 24, "bold", c.Text, 0)
		if m.Tagline != "" {
			addWrapped(m.Tagline, 12, c.TextSecondary)
		}
		if len(m.Contact) > 0 {
			add(strings.Join(m.Contact, "  ·  "), 10, "normal", c.Accent, 4)
		}
	}
	for _, p := range m.Parts {
		add(p.Heading, 16, "bold", c.Text, 18)
		for _, e := range p.Entries {
			title := e.Title
			if e.Subtitle != "" {
				title += " · " + e.Subtitle
			}
			add(title, 12, "bold", c.Text, 8)
			if e.Meta != "" {
				add(e.Meta, 10, "normal", c.TextSecondary, 0)
			}
			if e.Body != "" {
				addWrapped(e.Body, 10, c.Text)
			}
			if e.URL != "" {
				add(e.URL, 10, "normal", c.Accent, 0)
			}
		}
	}

	height := margin
	for _, l := range lines {
		height += l.gap + lineHeight*l.size/12
	}
	height += margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.1f" width="%.0f" height="%.0f">`+"\n",
		pageWidth, height, pageWidth, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", c.Background)
	buf.WriteString(`  <g font-family="Helvetica, Arial, sans-serif">` + "\n")

	y := margin
	for _, l := range lines {
		y += l.gap + lineHeight*l.size/12
		fmt.Fprintf(&buf, `    <text x="%.0f" y="%.1f" font-size="%.0f" font-weight="%s" fill="%s">%s</text>`+"\n",
			margin, y, l.size, l.weight, l.color, escape(l.text))
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
