package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/matzehuels/folio/pkg/nav"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render/markdown"
	"github.com/matzehuels/folio/pkg/theme"
)

var funcs = template.FuncMap{
	"stars": func(n int) string { return strings.Repeat("★", n+1) + strings.Repeat("☆", profile.MaxProficiency-n) },
	"inc":   func(i int) int { return i + 1 },
}

// Section bodies are named templates; a section without one renders the
// empty placeholder.
var pageTemplate = template.Must(template.New("page").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
{{- if .Favicon}}
<link rel="icon" href="{{.Favicon}}">
{{- end}}
<style>
  body { margin: 0; min-height: 100vh; display: flex; background: {{.Colors.Background}}; color: {{.Colors.Text}}; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.5; }
  main { flex: 1; max-width: 48rem; margin: 0 auto; padding: 3rem 1.5rem; }
  a { color: {{.Colors.Accent}}; }
  .secondary { color: {{.Colors.TextSecondary}}; }
  .card { background: {{.Colors.Surface}}; border: 1px solid {{.Colors.Border}}; border-radius: .75rem; padding: 1rem; margin: .5rem 0; }
  .cards { display: grid; grid-template-columns: repeat(4, 1fr); gap: .5rem; }
  .cards .medium { grid-column: span 2; }
  .cards .large { grid-column: span 2; grid-row: span 2; }
  nav.dots { position: fixed; right: 1rem; top: 50%; transform: translateY(-50%); display: flex; flex-direction: column; gap: .5rem; }
  nav.dots button, .arrow button, .themes button { background: none; border: 0; color: inherit; cursor: pointer; font: inherit; }
  nav.dots button.active { color: {{.Colors.Accent}}; }
  .arrow { text-align: center; }
  .themes { position: fixed; top: 1rem; right: 1rem; display: flex; gap: .5rem; }
  .themes button.active { text-decoration: underline; }
</style>
</head>
<body>
<div class="themes">
{{- range .Themes}}
<form method="post" action="/theme/{{.ID}}"><button{{if eq .ID $.ThemeID}} class="active"{{end}} title="{{.Description}}">{{.Name}}</button></form>
{{- end}}
{{- if .ResumeLabel}}
<a href="/resume.html">{{.ResumeLabel}}</a>
{{- end}}
</div>
<main id="{{.Section}}">
{{- if .Empty}}
<p class="secondary">Loading…</p>
{{- else}}
{{- if .HasPrevious}}
<form class="arrow" method="post" action="/prev"><button aria-label="Previous section">⌃</button></form>
{{- end}}
{{.Content}}
{{- if .HasNext}}
<form class="arrow" method="post" action="/next"><button aria-label="Next section">⌄</button></form>
{{- end}}
{{- end}}
</main>
{{- if .Dots}}
<nav class="dots">
{{- range .Dots}}
<form method="post" action="/jump/{{.Index}}"><button{{if .Active}} class="active"{{end}} aria-label="{{.Section}}">{{if .Active}}●{{else}}○{{end}}</button></form>
{{- end}}
</nav>
{{- end}}
</body>
</html>
{{define "profile"}}
{{- with .Doc.Profile}}
{{- if .Avatar}}<img src="{{.Avatar}}" alt="{{.Name}}" width="96" height="96">{{end}}
<h1>{{.Name}}</h1>
{{- if .Tagline}}
<p class="secondary">{{.Tagline}}</p>
{{- end}}
{{- if .Email}}
<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>
{{- end}}
{{- end}}
<div class="cards">
{{- range .Doc.Cards}}
<div class="card {{.Size}}">
<strong>{{if .Link}}<a href="{{.Link}}">{{.Heading}}</a>{{else}}{{.Heading}}{{end}}</strong>
{{- if .Description}}
<div class="secondary">{{.Description}}</div>
{{- end}}
{{- if .Content}}
<p>{{.Content}}</p>
{{- end}}
</div>
{{- end}}
</div>
{{end}}
{{define "intro"}}
{{- if .Intro}}{{.Intro}}{{else}}<p class="secondary">No introduction yet.</p>{{end}}
{{end}}
{{define "projects"}}
<h2>Projects</h2>
{{- range .Doc.Projects}}
<div class="card">
<strong>{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</strong>
{{- with index $.Stars .URL}} <span class="secondary">★ {{.}}</span>{{end}}
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
{{- if .Tech}}
<div class="secondary">{{range $i, $t := .Tech}}{{if $i}} · {{end}}{{$t}}{{end}}</div>
{{- end}}
</div>
{{- else}}
<p class="secondary">Nothing here yet.</p>
{{- end}}
{{end}}
{{define "experiences"}}
<h2>Experience</h2>
{{- range .Doc.Experiences}}
<div class="card">
<strong>{{.Position}}</strong>{{if .Company}} · {{.Company}}{{end}}
{{- if .Period}}
<div class="secondary">{{.Period}}</div>
{{- end}}
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
</div>
{{- else}}
<p class="secondary">Nothing here yet.</p>
{{- end}}
{{end}}
{{define "education"}}
<h2>Education</h2>
{{- range .Doc.Education}}
<div class="card">
<strong>{{.Institution}}</strong>{{if .Degree}} · {{.Degree}}{{end}}
{{- if .Period}}
<div class="secondary">{{.Period}}</div>
{{- end}}
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
</div>
{{- else}}
<p class="secondary">Nothing here yet.</p>
{{- end}}
{{end}}
{{define "techStacks"}}
<h2>Tech Stack</h2>
{{- range .Doc.SortedTechStacks}}
<div class="card"><strong>{{.Name}}</strong> <span title="{{.Label}}">{{stars .Level}}</span> <span class="secondary">{{.Label}}</span></div>
{{- else}}
<p class="secondary">Nothing here yet.</p>
{{- end}}
{{end}}
`))

type pageData struct {
	Title       string
	Description string
	Favicon     string
	Colors      theme.Colors
	Themes      []theme.Theme
	ThemeID     string
	ResumeLabel string

	Section     string
	Content     template.HTML
	Empty       bool
	Dots        []nav.Indicator
	HasNext     bool
	HasPrevious bool
}

type sectionData struct {
	Doc   *profile.Document
	Stars map[string]int
	Intro template.HTML
}

// page renders the controller's current section.
func (s *Server) page(c *nav.Controller, t theme.Theme) ([]byte, error) {
	meta := s.doc.Meta
	data := pageData{
		Title:       s.doc.Title(),
		Description: meta.Description,
		Favicon:     meta.Favicon,
		Colors:      t.Colors,
		Themes:      s.themes,
		ThemeID:     t.ID,
		Section:     c.Section(),
		Empty:       c.Count() == 0,
		HasNext:     c.HasNext(),
		HasPrevious: c.HasPrevious(),
	}
	if meta.ResumeExport.Enabled {
		data.ResumeLabel = meta.ResumeExport.ButtonLabel()
	}
	if c.Count() > 1 {
		data.Dots = c.Indicators()
	}
	if !data.Empty {
		content, err := s.section(c.Section())
		if err != nil {
			return nil, err
		}
		data.Content = content
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// section renders the body of one section. Unknown names render nothing,
// matching the terminal registry.
func (s *Server) section(name string) (template.HTML, error) {
	tmpl := pageTemplate.Lookup(name)
	if tmpl == nil || name == "page" {
		return "", nil
	}
	data := sectionData{Doc: s.doc, Stars: s.cfg.Stars}
	if name == "intro" && strings.TrimSpace(s.doc.Intro.Markdown) != "" {
		html, err := markdown.HTML(s.doc.Intro.Markdown)
		if err != nil {
			return "", fmt.Errorf("render intro: %w", err)
		}
		data.Intro = template.HTML(html)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
