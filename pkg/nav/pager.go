package nav

// Pager binds a [Controller] to a [Disambiguator]. Every event is
// classified and its intent applied before the call returns, so intents
// take effect in the order their events arrived.
type Pager struct {
	ctrl     *Controller
	gestures *Disambiguator
}

// NewPager creates a pager over sections.
func NewPager(sections []string, opts Options, clock Clock) *Pager {
	ctrl := NewController(sections)
	return &Pager{ctrl: ctrl, gestures: NewDisambiguator(ctrl, opts, clock)}
}

// Controller returns the navigation controller.
func (p *Pager) Controller() *Controller { return p.ctrl }

// Gestures returns the gesture disambiguator.
func (p *Pager) Gestures() *Disambiguator { return p.gestures }

// Wheel forwards a wheel event.
func (p *Pager) Wheel(ev WheelEvent) Outcome { return p.apply(p.gestures.Wheel(ev)) }

// TouchStart forwards a touch-start event.
func (p *Pager) TouchStart(ev TouchEvent) { p.gestures.TouchStart(ev) }

// TouchMove forwards a touch-move event.
func (p *Pager) TouchMove(ev TouchEvent) Outcome { return p.apply(p.gestures.TouchMove(ev)) }

// TouchEnd forwards a touch-end event.
func (p *Pager) TouchEnd(ev TouchEvent) { p.gestures.TouchEnd(ev) }

// Key forwards a key press.
func (p *Pager) Key(ev KeyEvent) Outcome { return p.apply(p.gestures.Key(ev)) }

// ClickIndicator handles a click on the dot for index.
func (p *Pager) ClickIndicator(index int) bool { return p.ctrl.JumpTo(index) }

// ClickNext handles a click on the next arrow.
func (p *Pager) ClickNext() bool { return p.ctrl.Advance() }

// ClickPrevious handles a click on the previous arrow.
func (p *Pager) ClickPrevious() bool { return p.ctrl.Retreat() }

func (p *Pager) apply(out Outcome) Outcome {
	p.ctrl.Apply(out.Intent)
	return out
}
