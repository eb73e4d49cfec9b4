package resume

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/matzehuels/folio/pkg/profile"
)

const textWidth = 78

// Text renders the resume as plain text wrapped at 78 columns.
func Text(doc *profile.Document, opts Options) []byte {
	m := build(doc, opts)
	var b strings.Builder

	if m.Name != "" {
		b.WriteString(m.Name + "\n")
		if m.Tagline != "" {
			b.WriteString(wordwrap.String(m.Tagline, textWidth) + "\n")
		}
		for _, c := range m.Contact {
			b.WriteString(c + "\n")
		}
	}
	for _, p := range m.Parts {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Heading + "\n" + strings.Repeat("=", len(p.Heading)) + "\n")
		for i, e := range p.Entries {
			if i > 0 && p.Name != PartTechStacks {
				b.WriteString("\n")
			}
			line := e.Title
			if e.Subtitle != "" {
				line += ", " + e.Subtitle
			}
			if e.Meta != "" {
				line += " (" + e.Meta + ")"
			}
			b.WriteString(line + "\n")
			if e.Body != "" {
				b.WriteString(indent.String(wordwrap.String(e.Body, textWidth-2), 2) + "\n")
			}
			if e.URL != "" {
				b.WriteString("  " + e.URL + "\n")
			}
		}
	}
	return []byte(b.String())
}
