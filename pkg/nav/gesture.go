package nav

import (
	"math"
	"time"
)

// Clock supplies the current time for threshold and cooldown bookkeeping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Counter reports the number of active sections. [Controller] implements it.
type Counter interface {
	Count() int
}

// Key identifies the navigation keys the disambiguator understands.
type Key int

const (
	KeyOther Key = iota
	KeyDown
	KeyPageDown
	KeyUp
	KeyPageUp
)

// WheelEvent is one wheel notch or trackpad sample. Positive DeltaY scrolls
// toward later content.
type WheelEvent struct {
	DeltaY   float64
	Consumed bool
}

// TouchEvent is one touch sample. Y is the absolute vertical position of the
// contact point and Target the element under it, which may be nil.
type TouchEvent struct {
	Y        float64
	Target   Element
	Consumed bool
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key      Key
	Consumed bool
}

// Outcome is the result of classifying one event.
type Outcome struct {
	Intent Intent
	// PreventDefault asks the host to cancel its default action
	// (native scrolling) for the event.
	PreventDefault bool
	// Passthrough reports that a nested scroll region should receive the
	// event natively.
	Passthrough bool
}

// Disambiguator classifies wheel, touch and key input into navigation
// intents. It reads the section count through a [Counter] and never changes
// navigation state itself.
type Disambiguator struct {
	opts     Options
	clock    Clock
	sections Counter

	wheelAcc    float64
	wheelLast   time.Time
	wheelStreak int

	touching   bool
	touchLastY float64
	touchAcc   float64
	residual   float64

	cooldownUntil time.Time
}

// NewDisambiguator returns a disambiguator using opts (zero fields take
// their defaults) and clock. A nil clock uses [SystemClock].
func NewDisambiguator(sections Counter, opts Options, clock Clock) *Disambiguator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Disambiguator{opts: opts.withDefaults(), clock: clock, sections: sections}
}

// Options returns the effective options.
func (d *Disambiguator) Options() Options { return d.opts }

// CoolingDown reports whether wheel and touch input are currently dropped.
func (d *Disambiguator) CoolingDown(now time.Time) bool {
	return now.Before(d.cooldownUntil)
}

// Reset clears every accumulator and the cooldown window.
func (d *Disambiguator) Reset() {
	*d = Disambiguator{opts: d.opts, clock: d.clock, sections: d.sections}
}

// Wheel classifies a wheel event.
func (d *Disambiguator) Wheel(ev WheelEvent) Outcome {
	if ev.Consumed || d.empty() {
		return Outcome{}
	}
	now := d.clock.Now()
	out := Outcome{PreventDefault: !d.opts.Passive}
	if d.CoolingDown(now) {
		return out
	}

	if !d.wheelLast.IsZero() {
		gap := now.Sub(d.wheelLast)
		switch {
		case gap > d.opts.WheelIdleReset:
			d.wheelAcc = 0
			d.wheelStreak = 0
		case gap <= d.opts.WheelQuickWindow:
			d.wheelStreak++
		default:
			d.wheelStreak = 0
		}
	}
	d.wheelLast = now
	d.wheelAcc += math.Copysign(math.Abs(ev.DeltaY)*d.opts.WheelDamping, ev.DeltaY)

	if math.Abs(d.wheelAcc) <= d.wheelThreshold() {
		return out
	}
	out.Intent = intentFor(d.wheelAcc)
	d.wheelAcc = 0
	d.wheelStreak = 0
	d.startCooldown(now)
	return out
}

// wheelThreshold shrinks with the quick-succession streak, bounded by the
// floor and ceiling.
func (d *Disambiguator) wheelThreshold() float64 {
	t := d.opts.WheelThreshold * math.Pow(d.opts.WheelShrink, float64(d.wheelStreak))
	return math.Min(math.Max(t, d.opts.WheelThresholdFloor), d.opts.WheelThresholdCeiling)
}

// TouchStart begins a touch sequence at ev.Y.
func (d *Disambiguator) TouchStart(ev TouchEvent) {
	if ev.Consumed {
		return
	}
	d.touching = true
	d.touchLastY = ev.Y
	d.touchAcc = 0
	d.residual = 0
}

// TouchMove classifies one touch-move sample.
func (d *Disambiguator) TouchMove(ev TouchEvent) Outcome {
	if ev.Consumed || !d.touching || d.empty() {
		return Outcome{}
	}
	delta := d.touchLastY - ev.Y
	d.touchLastY = ev.Y
	if delta == 0 {
		return Outcome{}
	}

	dir := Down
	if delta < 0 {
		dir = Up
	}
	if CanScroll(ev.Target, dir, d.opts.EdgeTolerance) {
		d.touchAcc = 0
		return Outcome{Passthrough: true}
	}

	now := d.clock.Now()
	out := Outcome{PreventDefault: !d.opts.Passive}
	if d.CoolingDown(now) {
		return out
	}
	d.touchAcc += delta
	if math.Abs(d.touchAcc) <= d.opts.TouchThreshold {
		return out
	}
	out.Intent = intentFor(d.touchAcc)
	d.touchAcc = 0
	d.startCooldown(now)
	return out
}

// TouchEnd ends the touch sequence. Any displacement that did not page is
// kept as an inertia residual for [Disambiguator.Tick].
func (d *Disambiguator) TouchEnd(TouchEvent) {
	if !d.touching {
		return
	}
	d.touching = false
	d.residual = d.touchAcc
	d.touchAcc = 0
}

// Tick decays the inertia residual by one step and returns it. The residual
// is purely cosmetic and never produces an intent.
func (d *Disambiguator) Tick() float64 {
	d.residual *= d.opts.InertiaDecay
	if math.Abs(d.residual) < d.opts.InertiaCutoff {
		d.residual = 0
	}
	return d.residual
}

// Residual returns the current inertia residual without decaying it.
func (d *Disambiguator) Residual() float64 { return d.residual }

// Key classifies a key press. Keys are discrete gestures and ignore the
// cooldown window.
func (d *Disambiguator) Key(ev KeyEvent) Outcome {
	if ev.Consumed || d.empty() {
		return Outcome{}
	}
	switch ev.Key {
	case KeyDown, KeyPageDown:
		return Outcome{Intent: Advance, PreventDefault: true}
	case KeyUp, KeyPageUp:
		return Outcome{Intent: Retreat, PreventDefault: true}
	default:
		return Outcome{}
	}
}

func (d *Disambiguator) startCooldown(now time.Time) {
	d.cooldownUntil = now.Add(d.opts.Cooldown)
}

func (d *Disambiguator) empty() bool {
	return d.sections == nil || d.sections.Count() == 0
}

func intentFor(v float64) Intent {
	if v > 0 {
		return Advance
	}
	return Retreat
}
