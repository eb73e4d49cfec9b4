package nav

import "time"

// Options holds the tuning constants for gesture classification.
// Zero fields are replaced with the values from [DefaultOptions].
type Options struct {
	// WheelDamping scales each wheel delta before it is accumulated.
	WheelDamping float64
	// WheelIdleReset clears the wheel accumulator when the gap since the
	// previous wheel event is longer than this.
	WheelIdleReset time.Duration
	// WheelThreshold is the accumulator magnitude needed to page when
	// events arrive slowly.
	WheelThreshold float64
	// WheelThresholdFloor and WheelThresholdCeiling bound the effective
	// wheel threshold.
	WheelThresholdFloor   float64
	WheelThresholdCeiling float64
	// WheelQuickWindow is the largest gap between wheel events that still
	// counts as quick succession.
	WheelQuickWindow time.Duration
	// WheelShrink multiplies the threshold once per consecutive quick event.
	WheelShrink float64

	// TouchThreshold is the vertical displacement, in pixels, that pages.
	TouchThreshold float64
	// EdgeTolerance is the slack, in pixels, when testing scroll edges.
	EdgeTolerance float64

	// Cooldown is the window after a wheel or touch intent during which
	// further wheel and touch events are dropped.
	Cooldown time.Duration

	// InertiaDecay is applied to the residual touch displacement per tick.
	InertiaDecay float64
	// InertiaCutoff zeroes the residual once its magnitude drops below it.
	InertiaCutoff float64

	// Passive reports that the host delivers events through listeners that
	// cannot cancel default actions. Wheel and touch outcomes then never ask
	// for PreventDefault.
	Passive bool
}

// DefaultOptions returns the standard tuning set.
func DefaultOptions() Options {
	return Options{
		WheelDamping:          0.5,
		WheelIdleReset:        500 * time.Millisecond,
		WheelThreshold:        50,
		WheelThresholdFloor:   15,
		WheelThresholdCeiling: 50,
		WheelQuickWindow:      150 * time.Millisecond,
		WheelShrink:           0.7,
		TouchThreshold:        50,
		EdgeTolerance:         5,
		Cooldown:              800 * time.Millisecond,
		InertiaDecay:          0.9,
		InertiaCutoff:         0.5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.WheelDamping <= 0 {
		o.WheelDamping = d.WheelDamping
	}
	if o.WheelIdleReset <= 0 {
		o.WheelIdleReset = d.WheelIdleReset
	}
	if o.WheelThreshold <= 0 {
		o.WheelThreshold = d.WheelThreshold
	}
	if o.WheelThresholdFloor <= 0 {
		o.WheelThresholdFloor = min(d.WheelThresholdFloor, o.WheelThreshold)
	}
	if o.WheelThresholdCeiling <= 0 {
		o.WheelThresholdCeiling = max(o.WheelThreshold, o.WheelThresholdFloor)
	}
	if o.WheelQuickWindow <= 0 {
		o.WheelQuickWindow = d.WheelQuickWindow
	}
	if o.WheelShrink <= 0 || o.WheelShrink > 1 {
		o.WheelShrink = d.WheelShrink
	}
	if o.TouchThreshold <= 0 {
		o.TouchThreshold = d.TouchThreshold
	}
	if o.EdgeTolerance <= 0 {
		o.EdgeTolerance = d.EdgeTolerance
	}
	if o.Cooldown <= 0 {
		o.Cooldown = d.Cooldown
	}
	if o.InertiaDecay <= 0 || o.InertiaDecay >= 1 {
		o.InertiaDecay = d.InertiaDecay
	}
	if o.InertiaCutoff <= 0 {
		o.InertiaCutoff = d.InertiaCutoff
	}
	return o
}
