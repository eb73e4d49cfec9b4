package term

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/folio/pkg/cards"
	"github.com/matzehuels/folio/pkg/nav"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/theme"
)

func testInput() Input {
	doc := &profile.Document{
		Profile: profile.Profile{
			Name:    "Ada Lovelace",
			Tagline: "Analyst of engines",
			Email:   "ada@example.com",
			Links: []profile.SocialLink{
				{Platform: "github", URL: "https://github.com/ada"},
				{Platform: "twitter", URL: "https://twitter.com/stvlynn"},
				{Platform: "blog", URL: "https://blog.example.com"},
			},
		},
		Intro: profile.Intro{Markdown: "# Hi\n\nI like **engines**."},
		Projects: []profile.Project{
			{Name: "engine", Description: "Notes", URL: "https://github.com/ada/engine", Tech: []string{"Go", "Graphviz"}},
			{Name: "quiet", URL: "https://example.com/quiet"},
		},
		Experiences: []profile.Experience{{Company: "Society", Position: "Translator", Period: "1842"}},
		Education:   []profile.Education{{Institution: "Home", Degree: "Mathematics", Period: "1830s"}},
		TechStacks: []profile.TechStack{
			{Name: "Go", Proficiency: 1},
			{Name: "Graphviz", Proficiency: 3},
		},
	}
	return Input{
		Doc:     doc,
		Palette: theme.Dark.Palette(),
		Width:   80,
		Stars:   map[string]int{"https://github.com/ada/engine": 42},
	}
}

func TestRegistryRender(t *testing.T) {
	r := NewRegistry()
	in := testInput()

	want := []string{"education", "experiences", "intro", "profile", "projects", "techStacks"}
	if !slices.Equal(r.Names(), want) {
		t.Errorf("Names = %v, want %v", r.Names(), want)
	}
	for _, name := range want {
		out, ok := r.Render(name, in)
		if !ok || out == "" {
			t.Errorf("Render(%q) = %q, %v", name, out, ok)
		}
	}

	if out, ok := r.Render("blog", in); ok || out != "" {
		t.Errorf("unknown section rendered %q, %v", out, ok)
	}
	if _, ok := r.Render("profile", Input{}); ok {
		t.Error("nil document should render nothing")
	}

	r.Register("blog", func(Input) string { return "posts" })
	if out, ok := r.Render("blog", in); !ok || out != "posts" {
		t.Errorf("custom renderer = %q, %v", out, ok)
	}
}

func TestProjectsStars(t *testing.T) {
	out := Projects(testInput())
	if !strings.Contains(out, "★ 42") {
		t.Errorf("missing star count:\n%s", out)
	}
	if strings.Count(out, "★") != 1 {
		t.Errorf("unknown star counts should not be shown:\n%s", out)
	}
	if !strings.Contains(out, "Go · Graphviz") {
		t.Errorf("missing tech list:\n%s", out)
	}
}

func TestTechStacksSorted(t *testing.T) {
	out := TechStacks(testInput())
	if strings.Index(out, "Graphviz") > strings.Index(out, "Go ") {
		t.Errorf("higher proficiency should come first:\n%s", out)
	}
	for _, want := range []string{"★★★★", "Advanced", "★★☆☆", "Basic"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestProfileCards(t *testing.T) {
	out := Profile(testInput())
	for _, want := range []string{"Ada Lovelace", "Analyst of engines", "GitHub", "@ada", "Steven Lynn", "blog.example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("profile missing %q:\n%s", want, out)
		}
	}
}

func TestCardsFitWidth(t *testing.T) {
	in := testInput()
	in.Width = 60
	out := Cards(in.Doc.Cards(), in)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > in.Width {
			t.Fatalf("card row is %d wide, want <= %d", w, in.Width)
		}
	}
}

func TestCardTypes(t *testing.T) {
	in := testInput()
	tests := []struct {
		card cards.Card
		want string
	}{
		{cards.Card{Type: cards.TypeMap}, "31.2304, 121.4737"},
		{cards.Card{Type: cards.TypeMastodon, Username: "ada", Instance: "mastodon.social"}, "@ada@mastodon.social"},
		{cards.Card{Type: cards.TypeText, Content: "hello there"}, "Note"},
		{cards.Card{Type: cards.TypeImage, Alt: "desk"}, "[desk]"},
	}
	for _, tt := range tests {
		if out := Card(tt.card, 2, in); !strings.Contains(out, tt.want) {
			t.Errorf("%s card missing %q:\n%s", tt.card.Type, tt.want, out)
		}
	}
}

func TestEmptySections(t *testing.T) {
	in := Input{Doc: &profile.Document{}, Palette: theme.Dark.Palette(), Width: 40}
	for _, fn := range []Renderer{Projects, Experiences, Education, TechStacks} {
		if out := fn(in); !strings.Contains(out, "Nothing here yet.") {
			t.Errorf("empty section = %q", out)
		}
	}
	if out := Intro(in); !strings.Contains(out, "No introduction yet.") {
		t.Errorf("empty intro = %q", out)
	}
}

func TestDots(t *testing.T) {
	c := nav.NewController([]string{"a", "b", "c"})
	c.Advance()
	got := Dots(c.Indicators(), theme.Dark.Palette())
	if got != "○\n●\n○" {
		t.Errorf("Dots = %q", got)
	}
}

func TestIconFor(t *testing.T) {
	if IconFor("GitHub").Glyph != "◆" {
		t.Error("lookup should be case-insensitive")
	}
	if IconFor("unknown") != IconFor("link") {
		t.Error("unknown names should use the link icon")
	}
}
