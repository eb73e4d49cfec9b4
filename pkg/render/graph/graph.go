// Package graph draws which technologies each project uses as a Graphviz
// diagram.
package graph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render"
	"github.com/matzehuels/folio/pkg/theme"
)

// Options configures the diagram.
type Options struct {
	// Theme colors nodes and edges. The zero value uses the minimal theme.
	Theme theme.Theme

	// Stars adds star counts to project labels.
	Stars map[string]int
}

// ToDOT converts the document's projects and their technologies to
// Graphviz DOT. Projects are boxes on the left, technologies ellipses on
// the right; technologies shared by several projects appear once.
func ToDOT(doc *profile.Document, opts Options) string {
	t := opts.Theme
	if t.ID == "" {
		t = theme.Minimal
	}
	c := t.Colors

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", c.Background)
	fmt.Fprintf(&buf, "  node [fontname=\"Helvetica\", fontsize=14, color=%q, fontcolor=%q];\n", c.Border, c.Text)
	fmt.Fprintf(&buf, "  edge [color=%q];\n", c.TextSecondary)
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range doc.Projects {
		label := p.Name
		if n, ok := opts.Stars[p.URL]; ok {
			label += fmt.Sprintf("\n★ %d", n)
		}
		attrs := []string{
			fmt.Sprintf("label=%q", label),
			"shape=box",
			`style="rounded,filled"`,
			fmt.Sprintf("fillcolor=%q", c.Surface),
		}
		if p.URL != "" {
			attrs = append(attrs, fmt.Sprintf("URL=%q", p.URL))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", projectID(p.Name), strings.Join(attrs, ", "))
	}
	for _, tech := range doc.Technologies() {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fontcolor=%q];\n", techID(tech), tech, c.Accent)
	}

	buf.WriteString("\n")
	for _, p := range doc.Projects {
		for _, tech := range p.Tech {
			fmt.Fprintf(&buf, "  %q -> %q;\n", projectID(p.Name), techID(tech))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func projectID(name string) string { return "project:" + name }
func techID(name string) string    { return "tech:" + name }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based root element so the
// diagram scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Render draws the document's project graph as SVG, PDF or PNG.
func Render(ctx context.Context, doc *profile.Document, format string, opts Options) ([]byte, error) {
	svg, err := RenderSVG(ctx, ToDOT(doc, opts))
	if err != nil {
		return nil, err
	}
	switch format {
	case "", "svg":
		return svg, nil
	case "pdf":
		return render.ToPDF(ctx, svg)
	case "png":
		return render.ToPNG(ctx, svg, 2)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q (want svg, pdf or png)", format)
}
