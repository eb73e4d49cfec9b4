package profile

import (
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/theme"
)

// Validate repairs what it can and reports the rest. Proficiency is clamped
// into range and invalid themes are dropped. The returned problems are
// warnings: the document stays usable.
func (d *Document) Validate() []error {
	var warns []error

	if err := d.Sections.Err(); err != nil {
		warns = append(warns, err)
	} else if !d.Sections.Declared() {
		warns = append(warns, errors.New(errors.ErrCodeInvalidSections, "no sections declared"))
	}

	for i, l := range d.Profile.Links {
		if err := errors.ValidateLink(l.URL); err != nil {
			warns = append(warns, errors.Wrap(errors.ErrCodeInvalidConfig, err, "profile.links[%d] (%s)", i, l.Platform))
		}
	}
	for i, p := range d.Projects {
		if p.URL == "" {
			continue
		}
		if err := errors.ValidateURL(p.URL); err != nil {
			warns = append(warns, errors.Wrap(errors.ErrCodeInvalidConfig, err, "projects[%d] (%s)", i, p.Name))
		}
	}
	for i := range d.TechStacks {
		t := &d.TechStacks[i]
		if t.Proficiency != t.Level() {
			warns = append(warns, errors.New(errors.ErrCodeInvalidConfig,
				"techStacks[%d] (%s): proficiency %d out of range 0..%d", i, t.Name, t.Proficiency, MaxProficiency))
			t.Proficiency = t.Level()
		}
	}

	themes, errs := theme.Validate(d.Themes.Available)
	d.Themes.Available = themes
	warns = append(warns, errs...)
	if d.Themes.Current != "" && len(themes) > 0 {
		if _, ok := theme.Find(themes, d.Themes.Current); !ok {
			warns = append(warns, errors.New(errors.ErrCodeInvalidTheme, "themes.current %q is not available", d.Themes.Current))
		}
	}
	return warns
}
