// Package pkg holds the libraries behind folio, a presenter for portfolio
// documents.
//
// # Overview
//
// A portfolio document (YAML, TOML or JSON) declares a profile, projects,
// experience, education, tech stacks and an ordered sections mapping. Folio
// shows the active sections one page at a time. The pkg directory is split
// into:
//
//  1. [profile] - the document model, its loaders and validation
//  2. [nav] - the section controller and the gesture disambiguator
//  3. [theme] - theme lists, selection and persistence
//  4. [render] - terminal, resume and graph renderers
//  5. [site] - the HTTP surface with per-visitor sessions
//  6. [cache], [session], [settings] - infrastructure
//  7. [integrations] - remote API clients (GitHub star counts)
//
// # Data Flow
//
//	portfolio document
//	         ↓
//	    [profile] package (parse, order sections, collect warnings)
//	         ↓
//	    [nav] package (current section, wheel/touch/key intents)
//	         ↓
//	    terminal pager, web site, or exported resume
//
// # Quick Start
//
//	doc, err := profile.Load("profile.yaml")
//	if err != nil {
//	    return err
//	}
//	pager := nav.NewPager(doc.ActiveSections(), nav.DefaultOptions(), nil)
//	pager.Wheel(nav.WheelEvent{DeltaY: 240})
//	fmt.Println(pager.Controller().Section())
//
// [profile]: github.com/matzehuels/folio/pkg/profile
// [nav]: github.com/matzehuels/folio/pkg/nav
// [theme]: github.com/matzehuels/folio/pkg/theme
// [render]: github.com/matzehuels/folio/pkg/render
// [site]: github.com/matzehuels/folio/pkg/site
// [cache]: github.com/matzehuels/folio/pkg/cache
// [session]: github.com/matzehuels/folio/pkg/session
// [settings]: github.com/matzehuels/folio/pkg/settings
// [integrations]: github.com/matzehuels/folio/pkg/integrations
package pkg
