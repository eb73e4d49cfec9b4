// Package resume renders a portfolio as a single printable resume.
//
// The resume covers the profile, experience, education, projects and tech
// stacks. Which parts appear follows meta.resumeExport.sections in the
// document unless [Options.All] is set.
package resume

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render"
	"github.com/matzehuels/folio/pkg/theme"
)

// Format is an output format.
type Format string

const (
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatSVG, FormatText, FormatPDF, FormatPNG}
}

// ParseFormat validates a format name. "text" is accepted for txt.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "text" {
		return FormatText, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown resume format %q (want html, svg, txt, pdf or png)", s)
}

// Ext returns the file extension for f, with the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Options configures rendering.
type Options struct {
	// Theme colors the HTML and SVG output. The zero value uses the
	// minimal theme.
	Theme theme.Theme

	// Stars maps project URLs to star counts.
	Stars map[string]int

	// All includes every part regardless of the document's export settings.
	All bool

	// Scale is the PNG scale factor. Zero means 2.
	Scale float64
}

func (o Options) theme() theme.Theme {
	if o.Theme.ID == "" {
		return theme.Minimal
	}
	return o.Theme
}

// Render produces the resume in format f.
func Render(ctx context.Context, doc *profile.Document, f Format, opts Options) ([]byte, error) {
	switch f {
	case FormatHTML:
		return HTML(doc, opts)
	case FormatSVG:
		return SVG(doc, opts), nil
	case FormatText:
		return Text(doc, opts), nil
	case FormatPDF:
		return render.ToPDF(ctx, SVG(doc, opts))
	case FormatPNG:
		scale := opts.Scale
		if scale == 0 {
			scale = 2
		}
		return render.ToPNG(ctx, SVG(doc, opts), scale)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown resume format %q", f)
}

// Part names, matching the resumeExport.sections keys.
const (
	PartProfile     = "profile"
	PartExperiences = "experiences"
	PartEducation   = "education"
	PartProjects    = "projects"
	PartTechStacks  = "techStacks"
)

// entry is one item of a resume part.
type entry struct {
	Title    string
	Subtitle string
	Meta     string
	Body     string
	URL      string
}

type part struct {
	Name    string
	Heading string
	Entries []entry
}

type model struct {
	Name    string
	Tagline string
	Contact []string
	Parts   []part
}

// build selects and flattens the document into resume parts.
func build(doc *profile.Document, opts Options) model {
	include := func(name string) bool {
		return opts.All || doc.Meta.ResumeExport.Includes(name)
	}
	m := model{}
	if include(PartProfile) {
		m.Name = doc.Profile.Name
		m.Tagline = doc.Profile.Tagline
		if doc.Profile.Email != "" {
			m.Contact = append(m.Contact, doc.Profile.Email)
		}
		for _, l := range doc.Profile.Links {
			if !strings.HasPrefix(l.URL, "mailto:") {
				m.Contact = append(m.Contact, l.URL)
			}
		}
	}
	if include(PartExperiences) && len(doc.Experiences) > 0 {
		p := part{Name: PartExperiences, Heading: "Experience"}
		for _, e := range doc.Experiences {
			p.Entries = append(p.Entries, entry{Title: e.Position, Subtitle: e.Company, Meta: e.Period, Body: e.Description})
		}
		m.Parts = append(m.Parts, p)
	}
	if include(PartEducation) && len(doc.Education) > 0 {
		p := part{Name: PartEducation, Heading: "Education"}
		for _, e := range doc.Education {
			p.Entries = append(p.Entries, entry{Title: e.Degree, Subtitle: e.Institution, Meta: e.Period, Body: e.Description})
		}
		m.Parts = append(m.Parts, p)
	}
	if include(PartProjects) && len(doc.Projects) > 0 {
		p := part{Name: PartProjects, Heading: "Projects"}
		for _, pr := range doc.Projects {
			meta := strings.Join(pr.Tech, ", ")
			if n, ok := opts.Stars[pr.URL]; ok {
				meta = strings.TrimPrefix(meta+fmt.Sprintf(" · ★ %d", n), " · ")
			}
			p.Entries = append(p.Entries, entry{Title: pr.Name, Meta: meta, Body: pr.Description, URL: pr.URL})
		}
		m.Parts = append(m.Parts, p)
	}
	if include(PartTechStacks) && len(doc.TechStacks) > 0 {
		p := part{Name: PartTechStacks, Heading: "Tech Stack"}
		for _, t := range doc.SortedTechStacks() {
			p.Entries = append(p.Entries, entry{Title: t.Name, Meta: stars(t) + " " + t.Label()})
		}
		m.Parts = append(m.Parts, p)
	}
	return m
}

// stars rates a proficiency from one to four stars.
func stars(t profile.TechStack) string {
	n := t.Level() + 1
	return strings.Repeat("★", n) + strings.Repeat("☆", profile.MaxProficiency+1-n)
}
