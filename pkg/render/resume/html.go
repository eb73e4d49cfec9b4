package resume

import (
	"bytes"
	"html/template"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/theme"
)

var htmlTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Model.Name}}{{.Model.Name}} · {{end}}Resume</title>
<style>
  body { background: {{.Colors.Background}}; color: {{.Colors.Text}}; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
  h1 { margin-bottom: 0; }
  h2 { border-bottom: 1px solid {{.Colors.Border}}; padding-bottom: .25rem; margin-top: 2rem; }
  .tagline, .meta { color: {{.Colors.TextSecondary}}; }
  .contact { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 1rem; }
  a { color: {{.Colors.Accent}}; }
  .entry { margin: 1rem 0; }
  .entry h3 { margin: 0; font-size: 1rem; }
</style>
</head>
<body>
{{- with .Model}}
{{- if .Name}}
<header>
<h1>{{.Name}}</h1>
{{- if .Tagline}}
<p class="tagline">{{.Tagline}}</p>
{{- end}}
{{- if .Contact}}
<ul class="contact">{{range .Contact}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
</header>
{{- end}}
{{- range .Parts}}
<section id="{{.Name}}">
<h2>{{.Heading}}</h2>
{{- range .Entries}}
<div class="entry">
<h3>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}{{if .Subtitle}} · {{.Subtitle}}{{end}}</h3>
{{- if .Meta}}
<div class="meta">{{.Meta}}</div>
{{- end}}
{{- if .Body}}
<p>{{.Body}}</p>
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
{{- end}}
</body>
</html>
`))

// HTML renders the resume as a standalone HTML page.
func HTML(doc *profile.Document, opts Options) ([]byte, error) {
	data := struct {
		Model  model
		Colors theme.Colors
	}{build(doc, opts), opts.theme().Colors}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
