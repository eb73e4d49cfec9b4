// Package render turns a portfolio document into output for people.
//
// # Overview
//
// Rendering is split by target:
//
//   - [markdown]: the introduction as HTML or styled terminal text
//   - [term]: one terminal renderer per section, looked up by name
//   - [resume]: a single-document resume in HTML, SVG, text, PDF or PNG
//   - [graph]: a projects-to-technologies diagram drawn with Graphviz
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The resume and graph
// renderers both go through them.
//
//	svg := resume.SVG(doc, resume.Options{})
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [markdown]: github.com/matzehuels/folio/pkg/render/markdown
// [term]: github.com/matzehuels/folio/pkg/render/term
// [resume]: github.com/matzehuels/folio/pkg/render/resume
// [graph]: github.com/matzehuels/folio/pkg/render/graph
package render
