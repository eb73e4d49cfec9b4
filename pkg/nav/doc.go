// Package nav implements paged-section navigation for full-screen portfolio
// layouts.
//
// # Overview
//
// A portfolio is shown one section at a time (profile, intro, projects, ...).
// Two pieces cooperate to decide which section is visible:
//
//   - [Controller] owns the active section index. It is the single source of
//     truth and clamps every mutation into the valid range.
//   - [Disambiguator] classifies raw wheel, touch and key input into
//     navigation intents ([Advance], [Retreat] or [None]), letting nested
//     scroll regions keep events they can still scroll.
//
// [Pager] wires both together: intents produced by the disambiguator are
// applied to the controller in the order their events arrived. Clicks on
// indicator dots and arrow controls go straight to the controller and never
// pass through gesture classification.
//
// # Basic Usage
//
//	p := nav.NewPager([]string{"profile", "intro", "projects"}, nav.DefaultOptions(), nav.SystemClock{})
//	p.Key(nav.KeyEvent{Key: nav.KeyDown})   // profile -> intro
//	p.ClickIndicator(2)                     // intro -> projects
//	p.Controller().Section()                // "projects"
//
// # Gesture Model
//
// Wheel deltas are damped and accumulated; the accumulator resets after an
// idle gap and fires once its magnitude exceeds a threshold that shrinks
// while events keep arriving in quick succession. Touch drags accumulate
// vertical displacement once no nested scrollable element can absorb the
// movement. After any wheel or touch intent a shared cooldown window drops
// further wheel and touch input, so one physical gesture moves at most one
// section. All numeric thresholds live in [Options].
//
// # Concurrency
//
// Types in this package are not safe for concurrent use. They are meant to
// be driven from a single UI event loop, which is the only writer of the
// navigation state.
package nav
