package model

import "math"

const (
	// GaugeSlots is the width of every bar gauge in the report.
	GaugeSlots = 20
	gaugeStep  = 1.0 / GaugeSlots

	// slotEpsilon absorbs binary rounding so that e.g. 0.15 fills
	// three slots rather than 2.9999999999999996 of them.
	slotEpsilon = 1e-9
)

// Ratio is a fraction that may be undefined, for example a CPU usage
// computed over a zero-length sample window.
type Ratio struct {
	Value float64
	Valid bool
}

// Percent is the ratio scaled to 0-100; an undefined ratio is 0.
func (r Ratio) Percent() float64 {
	if !r.Valid {
		return 0
	}
	return r.Value * 100
}

// Slots returns how many of the GaugeSlots are filled:
// clamp(floor(value/0.05), 0, 20). An undefined ratio fills none.
func (r Ratio) Slots() int {
	if !r.Valid || math.IsNaN(r.Value) {
		return 0
	}
	filled := int(math.Floor(r.Value/gaugeStep + slotEpsilon))
	if filled < 0 {
		return 0
	}
	if filled > GaugeSlots {
		return GaugeSlots
	}
	return filled
}
