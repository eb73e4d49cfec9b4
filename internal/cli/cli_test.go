package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render/resume"
	"github.com/matzehuels/folio/pkg/render/term"
	"github.com/matzehuels/folio/pkg/session"
	"github.com/matzehuels/folio/pkg/settings"
	"github.com/matzehuels/folio/pkg/theme"
)

const testDocument = "../../pkg/profile/testdata/profile.yaml"

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, want := range []string{"tui", "serve", "sections", "check", "export", "graph", "stars", "theme", "cache", "completion"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing subcommand %q in %v", want, got)
		}
	}
}

func TestRootCommandRunsSubcommand(t *testing.T) {
	doc := mustAbs(t, testDocument)
	t.Chdir(t.TempDir())
	for _, args := range [][]string{
		{"sections", doc},
		{"check", "--config", doc},
	} {
		root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
		root.SetArgs(args)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestRootCommandMissingDocument(t *testing.T) {
	t.Chdir(t.TempDir())
	root := New(&bytes.Buffer{}, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"sections", "missing.yaml"})
	root.SetErr(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error for a missing document")
	}
}

func TestDocumentPath(t *testing.T) {
	c := &CLI{document: defaultDocument}
	if got := c.documentPath(nil); got != defaultDocument {
		t.Errorf("documentPath(nil) = %q, want %q", got, defaultDocument)
	}
	if got := c.documentPath([]string{"me.toml"}); got != "me.toml" {
		t.Errorf("documentPath(me.toml) = %q", got)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []resume.Format
		wantErr bool
	}{
		{"", []resume.Format{resume.FormatHTML}, false},
		{"svg", []resume.Format{resume.FormatSVG}, false},
		{"html, txt", []resume.Format{resume.FormatHTML, resume.FormatText}, false},
		{"docx", nil, true},
	}
	for _, tt := range tests {
		got, err := parseFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input string
		format        resume.Format
		multiple      bool
		want          string
	}{
		{"", "me/profile.yaml", resume.FormatHTML, false, "me/profile-resume.html"},
		{"", "profile.toml", resume.FormatSVG, true, "profile-resume.svg"},
		{"cv.html", "profile.yaml", resume.FormatHTML, false, "cv.html"},
		{"cv.html", "profile.yaml", resume.FormatSVG, true, "cv.svg"},
		{"out/cv", "profile.yaml", resume.FormatPDF, true, "out/cv.pdf"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.format, tt.multiple); got != tt.want {
			t.Errorf("outputPath(%q, %q, %s, %v) = %q, want %q", tt.output, tt.input, tt.format, tt.multiple, got, tt.want)
		}
	}
}

func TestGraphFormat(t *testing.T) {
	tests := []struct{ output, format, want string }{
		{"", "", "svg"},
		{"g.png", "", "png"},
		{"g.PDF", "", "pdf"},
		{"g.dot", "", "svg"},
		{"g.svg", "PNG", "png"},
	}
	for _, tt := range tests {
		if got := graphFormat(tt.output, tt.format); got != tt.want {
			t.Errorf("graphFormat(%q, %q) = %q, want %q", tt.output, tt.format, got, tt.want)
		}
	}
}

func TestResolveTheme(t *testing.T) {
	ctx := context.Background()

	got, err := resolveTheme(ctx, theme.Config{}, "")
	if err != nil || got.ID != theme.Builtin()[0].ID {
		t.Errorf("resolveTheme(default) = %q, %v", got.ID, err)
	}
	got, err = resolveTheme(ctx, theme.Config{}, "minimal")
	if err != nil || got.ID != "minimal" {
		t.Errorf("resolveTheme(minimal) = %q, %v", got.ID, err)
	}
	if _, err := resolveTheme(ctx, theme.Config{}, "neon"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("resolveTheme(neon) error = %v, want INVALID_THEME", err)
	}
}

func TestSectionRows(t *testing.T) {
	doc := &profile.Document{Sections: profile.NewSections(
		profile.Section{Name: "projects", Order: 3},
		profile.Section{Name: "profile", Order: 1},
		profile.Section{Name: "awards", Order: 2},
		profile.Section{Name: "education", Order: 0},
	)}

	got := sectionRows(doc, term.NewRegistry())
	want := [][]string{
		{"1", "profile", "1", statusShown},
		{"2", "awards", "2", statusUnknown},
		{"3", "projects", "3", statusShown},
		{"", "education", "0", statusHidden},
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSessionStore(t *testing.T) {
	tests := []struct {
		backend string
		shared  bool
	}{
		{cache.BackendFile, false},
		{cache.BackendMemory, false},
		{cache.BackendRedis, true},
		{cache.BackendMongo, true},
	}
	for _, tt := range tests {
		s := settings.Default()
		s.Cache.Backend = tt.backend
		_, shared := sessionStore(s, cache.NewMemoryCache()).(*session.CacheStore)
		if shared != tt.shared {
			t.Errorf("backend %s: shared = %v, want %v", tt.backend, shared, tt.shared)
		}
	}
}

func TestServeURL(t *testing.T) {
	tests := map[string]string{
		":8080":          "http://localhost:8080",
		"127.0.0.1:9000": "http://127.0.0.1:9000",
	}
	for addr, want := range tests {
		if got := serveURL(addr); got != want {
			t.Errorf("serveURL(%q) = %q, want %q", addr, got, want)
		}
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}
	return abs
}
