package cards

import (
	"slices"
	"testing"
)

func TestDefaults(t *testing.T) {
	got := Defaults([]Social{
		{Platform: "GitHub", URL: "https://github.com/stvlynn"},
		{Platform: "twitter", URL: "https://twitter.com/stvlynn/"},
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/x"},
		{Platform: "X", URL: "https://x.com/someone"},
	})

	want := []struct {
		id       string
		typ      Type
		username string
		size     Size
	}{
		{"github-0", TypeGitHub, "stvlynn", SizeMedium},
		{"twitter-1", TypeTwitter, "stvlynn", SizeMedium},
		{"link-2", TypeLink, "", SizeSmall},
		{"twitter-3", TypeTwitter, "someone", SizeMedium},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		c := got[i]
		if c.ID != w.id || c.Type != w.typ || c.Username != w.username || c.Size != w.size {
			t.Errorf("card %d = %+v, want %+v", i, c, w)
		}
	}
	if got[2].Title != "LinkedIn" || got[2].URL != "https://linkedin.com/in/x" {
		t.Errorf("link card = %+v", got[2])
	}
}

func TestLocation(t *testing.T) {
	if (Card{Type: TypeMap}).Location() != DefaultCoordinates {
		t.Error("map without coordinates should use defaults")
	}
	c := Card{Type: TypeMap, Coordinates: &Coordinates{Lat: 52.52, Lng: 13.405}}
	if c.Location().Lat != 52.52 {
		t.Errorf("Location = %+v", c.Location())
	}
	if c.Link() != "https://www.openstreetmap.org/?mlat=52.5200&mlon=13.4050#map=13/52.5200/13.4050" {
		t.Errorf("Link = %q", c.Link())
	}
}

func TestHeadingAndLink(t *testing.T) {
	tests := []struct {
		card    Card
		heading string
		link    string
	}{
		{Card{Type: TypeLink, URL: "https://blog.example.com/post"}, "blog.example.com", "https://blog.example.com/post"},
		{Card{Type: TypeGitHub, Username: "octo"}, "GitHub", "https://github.com/octo"},
		{Card{Type: TypeMastodon, Username: "me", Instance: "mastodon.social"}, "Mastodon", "https://mastodon.social/@me"},
		{Card{Type: TypeText, Content: "hi"}, "Note", ""},
		{Card{Type: TypeImage, Title: "Desk"}, "Desk", ""},
	}
	for _, tt := range tests {
		if got := tt.card.Heading(); got != tt.heading {
			t.Errorf("%s Heading = %q, want %q", tt.card.Type, got, tt.heading)
		}
		if got := tt.card.Link(); got != tt.link {
			t.Errorf("%s Link = %q, want %q", tt.card.Type, got, tt.link)
		}
	}
}

func TestContributionWall(t *testing.T) {
	wall := ContributionWall("stvlynn", 0)
	if len(wall) != WallWeeks {
		t.Fatalf("weeks = %d, want %d", len(wall), WallWeeks)
	}
	for w, week := range wall {
		if len(week) != WallDays {
			t.Fatalf("week %d has %d days", w, len(week))
		}
		for _, lvl := range week {
			if lvl < 0 || lvl > MaxLevel {
				t.Fatalf("level %d out of range", lvl)
			}
		}
	}

	again := ContributionWall("stvlynn", 0)
	for w := range wall {
		if !slices.Equal(wall[w], again[w]) {
			t.Fatal("wall should be deterministic per username")
		}
	}
	if len(ContributionWall("x", 4)) != 4 {
		t.Error("explicit week count should be honored")
	}
}

func TestFakeTwitterProfile(t *testing.T) {
	p := FakeTwitterProfile("stvlynn", "")
	if p.Name != "Steven Lynn" || p.Username != "stvlynn" {
		t.Errorf("known profile = %+v", p)
	}
	p = FakeTwitterProfile("nobody", "Nobody")
	if p.Name != "Nobody" || p.Bio != "Twitter bio default text" {
		t.Errorf("default profile = %+v", p)
	}
}

func TestSizeSpan(t *testing.T) {
	for size, want := range map[Size][2]int{SizeSmall: {1, 1}, SizeMedium: {2, 1}, SizeLarge: {2, 2}, "": {1, 1}} {
		c, r := size.Span()
		if c != want[0] || r != want[1] {
			t.Errorf("%q.Span() = %d,%d want %v", size, c, r, want)
		}
	}
}

func TestResolve(t *testing.T) {
	links := []Social{{Platform: "github", URL: "https://github.com/octo"}}

	if got := Resolve(nil, links); len(got) != 1 || got[0].Type != TypeGitHub {
		t.Errorf("Resolve without config = %+v, want github default", got)
	}

	configured := []Card{{Type: TypeText, Content: "hello"}}
	got := Resolve(configured, links)
	if len(got) != 1 || got[0].Type != TypeText {
		t.Fatalf("Resolve with config = %+v", got)
	}
	if got[0].ID != "text-0" || got[0].Size != SizeSmall {
		t.Errorf("filled card = %+v", got[0])
	}
	if configured[0].ID != "" {
		t.Error("Resolve should not mutate its input")
	}
}
