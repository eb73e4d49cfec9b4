// Package profile loads portfolio documents.
//
// A document describes one person (profile, intro, projects, experience,
// education, tech stacks), the page metadata, the available themes and the
// ordered list of sections to present. Documents may be YAML, TOML or JSON;
// all three preserve the declaration order of the sections mapping.
package profile

import (
	"cmp"
	"slices"

	"github.com/matzehuels/folio/pkg/cards"
	"github.com/matzehuels/folio/pkg/theme"
)

// Document is a parsed portfolio.
type Document struct {
	Profile     Profile      `json:"profile" yaml:"profile" toml:"profile"`
	Intro       Intro        `json:"intro" yaml:"intro" toml:"intro"`
	Projects    []Project    `json:"projects" yaml:"projects" toml:"projects"`
	Experiences []Experience `json:"experiences" yaml:"experiences" toml:"experiences"`
	Education   []Education  `json:"education" yaml:"education" toml:"education"`
	TechStacks  []TechStack  `json:"techStacks" yaml:"techStacks" toml:"techStacks"`
	Meta        Meta         `json:"meta" yaml:"meta" toml:"meta"`
	Themes      theme.Config `json:"themes" yaml:"themes" toml:"themes"`
	Sections    Sections     `json:"sections" yaml:"sections" toml:"sections"`

	// Path is the file the document was loaded from. Empty after Parse.
	Path string `json:"-" yaml:"-" toml:"-"`

	// Warnings collects recoverable problems found while loading. A document
	// with warnings is still usable.
	Warnings []error `json:"-" yaml:"-" toml:"-"`
}

// Profile is the person the portfolio is about.
type Profile struct {
	Name    string       `json:"name" yaml:"name" toml:"name"`
	Avatar  string       `json:"avatar" yaml:"avatar" toml:"avatar"`
	Tagline string       `json:"tagline" yaml:"tagline" toml:"tagline"`
	Email   string       `json:"email" yaml:"email" toml:"email"`
	Links   []SocialLink `json:"links" yaml:"links" toml:"links"`
	Cards   []cards.Card `json:"cards,omitempty" yaml:"cards,omitempty" toml:"cards,omitempty"`

	// SocialMedia is the legacy name for Links.
	SocialMedia []SocialLink `json:"socialMedia,omitempty" yaml:"socialMedia,omitempty" toml:"socialMedia,omitempty"`
}

// SocialLink is one external profile.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform" toml:"platform"`
	URL      string `json:"url" yaml:"url" toml:"url"`
}

// Intro is the free-form introduction. Content is either inline markdown or
// the name of a markdown file next to the document.
type Intro struct {
	Content string `json:"content" yaml:"content" toml:"content"`

	// Markdown is the resolved introduction text.
	Markdown string `json:"-" yaml:"-" toml:"-"`
}

type Project struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	URL         string   `json:"url" yaml:"url" toml:"url"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Tech        []string `json:"tech" yaml:"tech" toml:"tech"`
}

type Experience struct {
	Company     string `json:"company" yaml:"company" toml:"company"`
	Position    string `json:"position" yaml:"position" toml:"position"`
	Period      string `json:"period" yaml:"period" toml:"period"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution" toml:"institution"`
	Degree      string `json:"degree" yaml:"degree" toml:"degree"`
	Period      string `json:"period" yaml:"period" toml:"period"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
}

// Proficiency levels run from 0 (beginner) to MaxProficiency (advanced).
const MaxProficiency = 3

var proficiencyLabels = [MaxProficiency + 1]string{"Beginner", "Basic", "Intermediate", "Advanced"}

type TechStack struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Proficiency int    `json:"proficiency" yaml:"proficiency" toml:"proficiency"`
	Icon        string `json:"icon" yaml:"icon" toml:"icon"`
}

// Level returns the proficiency clamped into 0..MaxProficiency.
func (t TechStack) Level() int { return min(max(t.Proficiency, 0), MaxProficiency) }

// Label returns the human name of the proficiency level.
func (t TechStack) Label() string { return proficiencyLabels[t.Level()] }

// Meta holds page metadata.
type Meta struct {
	Title        string       `json:"title" yaml:"title" toml:"title"`
	Favicon      string       `json:"favicon" yaml:"favicon" toml:"favicon"`
	Description  string       `json:"description" yaml:"description" toml:"description"`
	ResumeExport ResumeExport `json:"resumeExport" yaml:"resumeExport" toml:"resumeExport"`
}

// ResumeExport controls the resume download offered by the page.
type ResumeExport struct {
	Enabled  bool            `json:"enabled" yaml:"enabled" toml:"enabled"`
	Label    string          `json:"label" yaml:"label" toml:"label"`
	Sections map[string]bool `json:"sections" yaml:"sections" toml:"sections"`
}

// DefaultResumeLabel is used when ResumeExport.Label is empty.
const DefaultResumeLabel = "Export Resume"

// ButtonLabel returns the export label.
func (r ResumeExport) ButtonLabel() string {
	if r.Label == "" {
		return DefaultResumeLabel
	}
	return r.Label
}

// Includes reports whether the resume contains section. Without a sections
// map every section is included; with one, only those set to true.
func (r ResumeExport) Includes(section string) bool {
	if r.Sections == nil {
		return true
	}
	return r.Sections[section]
}

// Title returns the page title, falling back to the profile name.
func (d *Document) Title() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	return d.Profile.Name
}

// ActiveSections returns the names of the sections to present, in order.
func (d *Document) ActiveSections() []string { return d.Sections.Active() }

// Cards returns the profile's bento cards: the configured ones, or defaults
// derived from the social links.
func (d *Document) Cards() []cards.Card {
	links := make([]cards.Social, len(d.Profile.Links))
	for i, l := range d.Profile.Links {
		links[i] = cards.Social{Platform: l.Platform, URL: l.URL}
	}
	return cards.Resolve(d.Profile.Cards, links)
}

// SortedTechStacks returns the tech stacks ordered by proficiency, highest
// first. Equal levels keep document order.
func (d *Document) SortedTechStacks() []TechStack {
	out := slices.Clone(d.TechStacks)
	slices.SortStableFunc(out, func(a, b TechStack) int { return cmp.Compare(b.Level(), a.Level()) })
	return out
}

// Technologies returns every distinct technology named by a project, in
// first-use order.
func (d *Document) Technologies() []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range d.Projects {
		for _, t := range p.Tech {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
