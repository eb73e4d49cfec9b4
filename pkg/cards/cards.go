// Package cards models the bento cards shown on the profile section:
// link previews, a GitHub contribution wall, Twitter and Mastodon profiles,
// a location map, free text and images.
//
// Cards either come from the portfolio document or are derived from the
// profile's social links with [Defaults].
package cards

import (
	"fmt"
	"net/url"
	"strings"
)

// Type identifies a card kind.
type Type string

const (
	TypeLink     Type = "link"
	TypeGitHub   Type = "github"
	TypeTwitter  Type = "twitter"
	TypeMap      Type = "map"
	TypeText     Type = "text"
	TypeImage    Type = "image"
	TypeMastodon Type = "mastodon"
)

// Size controls how many grid cells a card spans.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Span returns the card's width and height in grid cells.
func (s Size) Span() (cols, rows int) {
	switch s {
	case SizeMedium:
		return 2, 1
	case SizeLarge:
		return 2, 2
	default:
		return 1, 1
	}
}

// Coordinates is a map location.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat" toml:"lat"`
	Lng float64 `json:"lng" yaml:"lng" toml:"lng"`
}

// Default map location when a map card has no coordinates.
var DefaultCoordinates = Coordinates{Lat: 31.2304, Lng: 121.4737}

// Card is one bento card. Fields beyond the common header are used by the
// card types that need them.
type Card struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Type        Type   `json:"type" yaml:"type" toml:"type"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Size        Size   `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`

	URL      string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Image    string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty" toml:"username,omitempty"`
	Instance string `json:"instance,omitempty" yaml:"instance,omitempty" toml:"instance,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Alt      string `json:"alt,omitempty" yaml:"alt,omitempty" toml:"alt,omitempty"`

	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty" toml:"coordinates,omitempty"`
}

// Social is a profile link used to derive default cards.
type Social struct {
	Platform string
	URL      string
}

// Defaults derives cards from social links: GitHub and Twitter/X links
// become profile cards, everything else a link card. IDs are
// "<kind>-<index>" with the link's position.
func Defaults(links []Social) []Card {
	out := make([]Card, 0, len(links))
	for i, l := range links {
		switch strings.ToLower(l.Platform) {
		case "github":
			out = append(out, Card{
				ID:          fmt.Sprintf("github-%d", i),
				Type:        TypeGitHub,
				Title:       "GitHub",
				Description: "My GitHub profile",
				Username:    firstPathSegment(l.URL),
				Size:        SizeMedium,
			})
		case "twitter", "x":
			out = append(out, Card{
				ID:          fmt.Sprintf("twitter-%d", i),
				Type:        TypeTwitter,
				Title:       "Twitter",
				Description: "Follow me on Twitter",
				Username:    firstPathSegment(l.URL),
				Size:        SizeMedium,
			})
		default:
			out = append(out, Card{
				ID:    fmt.Sprintf("link-%d", i),
				Type:  TypeLink,
				Title: l.Platform,
				URL:   l.URL,
				Size:  SizeSmall,
			})
		}
	}
	return out
}

// Resolve returns the configured cards when there are any, else the
// defaults derived from links.
func Resolve(configured []Card, links []Social) []Card {
	if len(configured) > 0 {
		out := make([]Card, len(configured))
		copy(out, configured)
		for i := range out {
			if out[i].Size == "" {
				out[i].Size = SizeSmall
			}
			if out[i].ID == "" {
				out[i].ID = fmt.Sprintf("%s-%d", out[i].Type, i)
			}
		}
		return out
	}
	return Defaults(links)
}

// Location returns the map coordinates, falling back to
// [DefaultCoordinates] when either is unset.
func (c Card) Location() Coordinates {
	if c.Coordinates == nil || c.Coordinates.Lat == 0 || c.Coordinates.Lng == 0 {
		return DefaultCoordinates
	}
	return *c.Coordinates
}

// MapURL returns an OpenStreetMap link centred on the card location.
func (c Card) MapURL() string {
	loc := c.Location()
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=13/%.4f/%.4f",
		loc.Lat, loc.Lng, loc.Lat, loc.Lng)
}

// Link returns the URL the card points at, or "" when it has none.
func (c Card) Link() string {
	switch c.Type {
	case TypeGitHub:
		return "https://github.com/" + c.Username
	case TypeTwitter:
		return "https://twitter.com/" + c.Username
	case TypeMastodon:
		if c.Instance == "" {
			return ""
		}
		return "https://" + c.Instance + "/@" + c.Username
	case TypeMap:
		return c.MapURL()
	default:
		return c.URL
	}
}

// Heading returns the card title, or a type-specific fallback.
func (c Card) Heading() string {
	if c.Title != "" {
		return c.Title
	}
	switch c.Type {
	case TypeLink:
		return Hostname(c.URL)
	case TypeGitHub:
		return "GitHub"
	case TypeTwitter:
		return "Twitter"
	case TypeMastodon:
		return "Mastodon"
	case TypeText:
		return "Note"
	default:
		return "Card"
	}
}

// Hostname returns the host of rawURL, or rawURL itself when it does not
// parse.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}

func firstPathSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	seg, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	return seg
}
