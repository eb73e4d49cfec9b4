package nav

// Direction is the content-relative direction of a gesture.
type Direction int

const (
	// Up reveals content above (scrolling toward the top edge).
	Up Direction = iota
	// Down reveals content below (scrolling toward the bottom edge).
	Down
)

// Metrics is the live scroll geometry of an element, in pixels.
type Metrics struct {
	ScrollTop    float64
	ScrollHeight float64
	ClientHeight float64
}

// Element is a node in the host's layout tree that may scroll on its own.
// Parent returns a nil interface at the root.
type Element interface {
	Parent() Element
	OverflowHidden() bool
	Metrics() Metrics
}

// Box is a plain [Element] with fixed geometry.
type Box struct {
	Container Element
	Hidden    bool
	Scroll    Metrics
}

// Parent returns the containing element. A nil box has none.
func (b *Box) Parent() Element {
	if b == nil || b.Container == nil {
		return nil
	}
	return b.Container
}

// OverflowHidden reports whether overflow is clipped without scrolling. A
// nil box never scrolls.
func (b *Box) OverflowHidden() bool { return b == nil || b.Hidden }

// Metrics returns the box geometry.
func (b *Box) Metrics() Metrics {
	if b == nil {
		return Metrics{}
	}
	return b.Scroll
}

// Scrollable reports whether el scrolls independently: overflow is not
// hidden and its content is taller than its box.
func Scrollable(el Element) bool {
	if el == nil || el.OverflowHidden() {
		return false
	}
	m := el.Metrics()
	return m.ScrollHeight > m.ClientHeight
}

// NearestScrollable returns el or its closest ancestor that is
// [Scrollable], or nil when there is none.
func NearestScrollable(el Element) Element {
	for e := el; e != nil; e = e.Parent() {
		if Scrollable(e) {
			return e
		}
	}
	return nil
}

// Edges reports whether m is scrolled to its top and bottom edges within
// tolerance pixels.
func Edges(m Metrics, tolerance float64) (atTop, atBottom bool) {
	atTop = m.ScrollTop <= tolerance
	atBottom = m.ScrollTop+m.ClientHeight >= m.ScrollHeight-tolerance
	return atTop, atBottom
}

// AtEdge reports whether m cannot scroll any further in dir.
func AtEdge(m Metrics, dir Direction, tolerance float64) bool {
	atTop, atBottom := Edges(m, tolerance)
	if dir == Down {
		return atBottom
	}
	return atTop
}

// CanScroll reports whether the nearest scrollable element around target
// would absorb movement in dir. An unresolvable target is not nested.
func CanScroll(target Element, dir Direction, tolerance float64) bool {
	el := NearestScrollable(target)
	if el == nil {
		return false
	}
	return !AtEdge(el.Metrics(), dir, tolerance)
}
