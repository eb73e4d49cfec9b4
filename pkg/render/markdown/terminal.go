package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Styles controls terminal rendering.
type Styles struct {
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Strong   lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Quote    lipgloss.Style
	Rule     lipgloss.Style
}

// DefaultStyles returns uncolored styles.
func DefaultStyles() Styles {
	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Faint(true),
		Link:     lipgloss.NewStyle().Underline(true),
		Quote:    lipgloss.NewStyle().Faint(true),
		Rule:     lipgloss.NewStyle().Faint(true),
	}
}

// Terminal renders src as styled text wrapped to width columns. A width of
// zero or less disables wrapping.
func Terminal(src string, width int, st Styles) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))
	r := &termRenderer{src: source, st: st}

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if s := r.block(n, width); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

type termRenderer struct {
	src []byte
	st  Styles
}

func (r *termRenderer) block(n ast.Node, width int) string {
	switch n := n.(type) {
	case *ast.Heading:
		prefix := strings.Repeat("#", n.Level) + " "
		return r.st.Heading.Render(wrap(prefix+r.inline(n), width))
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(r.inline(n), width)
	case *ast.List:
		return r.list(n, width)
	case *ast.Blockquote:
		var parts []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			parts = append(parts, r.block(c, width-2))
		}
		body := strings.Join(parts, "\n\n")
		lines := strings.Split(body, "\n")
		for i, l := range lines {
			lines[i] = r.st.Quote.Render("│ ") + l
		}
		return strings.Join(lines, "\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		writeLines(&b, n, r.src)
		code := strings.TrimRight(b.String(), "\n")
		return indent.String(r.st.Code.Render(code), 4)
	case *ast.ThematicBreak:
		w := width
		if w <= 0 {
			w = 40
		}
		return r.st.Rule.Render(strings.Repeat("─", w))
	case *east.Table:
		return r.table(n)
	case *ast.HTMLBlock:
		return ""
	default:
		return wrap(r.inline(n), width)
	}
}

func (r *termRenderer) list(l *ast.List, width int) string {
	var items []string
	num := l.Start
	if num == 0 {
		num = 1
	}
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		pad := len([]rune(marker))

		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			parts = append(parts, r.block(c, width-pad))
		}
		sep := "\n"
		if !l.IsTight {
			sep = "\n\n"
		}
		body := indent.String(strings.Join(parts, sep), uint(pad))
		items = append(items, marker+strings.TrimPrefix(body, strings.Repeat(" ", pad)))
	}
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

func (r *termRenderer) table(t *east.Table) string {
	var rows [][]string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.inline(cell))
		}
		rows = append(rows, cells)
	}
	widths := map[int]int{}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, len(row))
		for i, c := range row {
			padded[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		}
		lines = append(lines, strings.TrimRight(strings.Join(padded, "  "), " "))
	}
	return strings.Join(lines, "\n")
}

func (r *termRenderer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
			switch {
			case c.HardLineBreak():
				b.WriteByte('\n')
			case c.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.Emphasis:
			if c.Level >= 2 {
				b.WriteString(r.st.Strong.Render(r.inline(c)))
			} else {
				b.WriteString(r.st.Emphasis.Render(r.inline(c)))
			}
		case *ast.CodeSpan:
			b.WriteString(r.st.Code.Render(r.inline(c)))
		case *ast.Link:
			label := r.inline(c)
			dest := string(c.Destination)
			if label == dest || label == "" {
				b.WriteString(r.st.Link.Render(dest))
			} else {
				b.WriteString(r.st.Link.Render(label) + " (" + dest + ")")
			}
		case *ast.AutoLink:
			b.WriteString(r.st.Link.Render(string(c.URL(r.src))))
		case *ast.Image:
			b.WriteString("[" + r.inline(c) + "]")
		case *east.Strikethrough:
			b.WriteString(r.st.Text.Strikethrough(true).Render(r.inline(c)))
		case *ast.RawHTML:
		default:
			b.WriteString(r.inline(c))
		}
	}
	return r.st.Text.Render(b.String())
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
