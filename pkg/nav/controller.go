package nav

import "slices"

// Intent is the classified outcome of a gesture.
type Intent int

const (
	// None means the gesture does not move the active section.
	None Intent = iota
	// Advance moves to the next section.
	Advance
	// Retreat moves to the previous section.
	Retreat
)

// String returns the lowercase intent name.
func (i Intent) String() string {
	switch i {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "none"
	}
}

// Indicator describes one navigation dot.
type Indicator struct {
	Index   int
	Section string
	Active  bool
}

// Change is delivered to observers after the active section moved.
type Change struct {
	From    int
	To      int
	Section string
}

// Controller holds the active section index for an immutable list of
// sections. The index always satisfies 0 <= Current() < Count(), or is 0
// when there are no sections, in which case every operation is a no-op.
type Controller struct {
	sections  []string
	current   int
	observers []func(Change)
}

// NewController creates a controller positioned on the first section.
// The slice is copied; later changes by the caller are not observed.
func NewController(sections []string) *Controller {
	return &Controller{sections: slices.Clone(sections)}
}

// Count returns the number of sections.
func (c *Controller) Count() int { return len(c.sections) }

// Current returns the active section index.
func (c *Controller) Current() int { return c.current }

// Section returns the active section name, or "" when there are no sections.
func (c *Controller) Section() string {
	if len(c.sections) == 0 {
		return ""
	}
	return c.sections[c.current]
}

// Sections returns a copy of the ordered section names.
func (c *Controller) Sections() []string { return slices.Clone(c.sections) }

// Advance moves to the next section. It is a no-op on the last section.
func (c *Controller) Advance() bool { return c.set(c.current + 1) }

// Retreat moves to the previous section. It is a no-op on the first section.
func (c *Controller) Retreat() bool { return c.set(c.current - 1) }

// JumpTo moves to index, clamped silently into the valid range.
func (c *Controller) JumpTo(index int) bool { return c.set(index) }

// Apply performs the operation named by intent and reports whether the
// active section changed.
func (c *Controller) Apply(intent Intent) bool {
	switch intent {
	case Advance:
		return c.Advance()
	case Retreat:
		return c.Retreat()
	default:
		return false
	}
}

// HasNext reports whether a section follows the active one.
func (c *Controller) HasNext() bool { return c.current < len(c.sections)-1 }

// HasPrevious reports whether a section precedes the active one.
func (c *Controller) HasPrevious() bool { return c.current > 0 }

// Indicators returns one entry per section with the active one flagged.
func (c *Controller) Indicators() []Indicator {
	out := make([]Indicator, len(c.sections))
	for i, name := range c.sections {
		out[i] = Indicator{Index: i, Section: name, Active: i == c.current}
	}
	return out
}

// OnChange registers fn to be called synchronously after every change of
// the active section. Observers run in registration order.
func (c *Controller) OnChange(fn func(Change)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Controller) set(index int) bool {
	next := clamp(index, len(c.sections))
	if next == c.current {
		return false
	}
	ch := Change{From: c.current, To: next, Section: c.sections[next]}
	c.current = next
	for _, fn := range c.observers {
		fn(ch)
	}
	return true
}

func clamp(index, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(index, n-1))
}
