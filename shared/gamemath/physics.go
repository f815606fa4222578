package gamemath

import "math"

// ClampDT bounds a frame delta to [0, max]. Negative or NaN deltas become zero.
func ClampDT(dt, max float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return math.Min(dt, max)
}

// SubSteps splits dt into n equal slices no larger than step.
func SubSteps(dt, step float64) (n int, slice float64) {
	if dt <= 0 || step <= 0 {
		return 0, 0
	}
	n = int(math.Ceil(dt/step - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, dt / float64(n)
}

// Round converts a pixel displacement to whole pixels, half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Tier rounds value down to a multiple of step, clamped to [0, max].
// HUD bars pick their fill image by tier.
func Tier(value, step, max int) int {
	if value <= 0 || step <= 0 {
		return 0
	}
	if value > max {
		value = max
	}
	return value / step * step
}

// BarPercent converts value out of max to a percentage and rounds it down
// to a multiple of step. Bar images are named by this percentage.
func BarPercent(value, max, step int) int {
	if max <= 0 {
		return 0
	}
	return Tier(value*100/max, step, 100)
}
