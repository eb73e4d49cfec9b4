// Package term renders portfolio sections as styled terminal text.
//
// Each section name maps to one [Renderer]. The [Registry] holds the set
// and returns nothing for names it does not know, so a document may list
// sections this build cannot draw without breaking navigation.
package term

import (
	"maps"
	"slices"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/theme"
)

// Section names understood by [NewRegistry].
const (
	SectionProfile     = "profile"
	SectionIntro       = "intro"
	SectionProjects    = "projects"
	SectionExperiences = "experiences"
	SectionTechStacks  = "techStacks"
	SectionEducation   = "education"
)

// Input is everything a section renderer may draw on.
type Input struct {
	Doc     *profile.Document
	Palette theme.Palette
	Width   int

	// Stars maps project URLs to GitHub star counts. Missing entries are
	// unknown and not shown.
	Stars map[string]int
}

// Renderer draws one section.
type Renderer func(Input) string

// Registry maps section names to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry with the built-in section renderers.
func NewRegistry() *Registry {
	r := &Registry{renderers: map[string]Renderer{}}
	r.Register(SectionProfile, Profile)
	r.Register(SectionIntro, Intro)
	r.Register(SectionProjects, Projects)
	r.Register(SectionExperiences, Experiences)
	r.Register(SectionTechStacks, TechStacks)
	r.Register(SectionEducation, Education)
	return r
}

// Register adds or replaces the renderer for name.
func (r *Registry) Register(name string, fn Renderer) { r.renderers[name] = fn }

// Has reports whether name has a renderer.
func (r *Registry) Has(name string) bool {
	_, ok := r.renderers[name]
	return ok
}

// Names returns the registered section names, sorted.
func (r *Registry) Names() []string { return slices.Sorted(maps.Keys(r.renderers)) }

// Render draws section name. Unknown names render nothing and report false.
func (r *Registry) Render(name string, in Input) (string, bool) {
	fn, ok := r.renderers[name]
	if !ok || in.Doc == nil {
		return "", false
	}
	if in.Width <= 0 {
		in.Width = 80
	}
	return fn(in), true
}
