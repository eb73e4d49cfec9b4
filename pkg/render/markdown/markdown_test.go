package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

const intro = `# Hello

I write about **engines** and [numbers](https://example.com).

- first
- second item

1. one
2. two

` + "```go\nfmt.Println(\"hi\")\n```" + `

> quoted

<script>alert(1)</script>
`

func TestHTML(t *testing.T) {
	out, err := HTML(intro)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{
		"<h1>Hello</h1>",
		"<strong>engines</strong>",
		`<a href="https://example.com">numbers</a>`,
		"<li>second item</li>",
		"<ol>",
		`<code class="language-go">`,
		"<blockquote>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<script>") {
		t.Error("raw HTML should not pass through")
	}
}

func TestHTMLStrikethrough(t *testing.T) {
	out, err := HTML("~~old~~ new")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<del>old</del>") {
		t.Errorf("GFM strikethrough not rendered: %s", out)
	}
}

func TestTerminal(t *testing.T) {
	out := Terminal(intro, 0, DefaultStyles())
	for _, want := range []string{
		"# Hello",
		"engines",
		"numbers (https://example.com)",
		"• first",
		"• second item",
		"1. one",
		"2. two",
		`fmt.Println("hi")`,
		"│ quoted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Terminal missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "script") {
		t.Error("raw HTML should be dropped")
	}
}

func TestTerminalWraps(t *testing.T) {
	src := "one two three four five six seven eight nine ten"
	out := Terminal(src, 12, DefaultStyles())
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(strings.TrimRight(line, " ")); w > 12 {
			t.Errorf("line %q is %d wide, want <= 12", line, w)
		}
	}
	if strings.Count(out, "\n") < 3 {
		t.Errorf("expected wrapping, got %q", out)
	}
}

func TestPlainAndSummary(t *testing.T) {
	plain := Plain(intro)
	if !strings.HasPrefix(plain, "Hello\n\nI write about engines and numbers.") {
		t.Errorf("Plain = %q", plain)
	}
	if got := Summary(intro, 0); got != "Hello" {
		t.Errorf("Summary = %q, want Hello", got)
	}
	if got := Summary("A fairly long sentence here", 10); got != "A fairly…" {
		t.Errorf("Summary truncated = %q", got)
	}
}
