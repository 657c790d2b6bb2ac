package gamemath

import "math"

// Lerp interpolates between a and b without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DampFactor returns the fraction of the remaining distance to a target
// covered in dt seconds by a first-order filter with the given rate (1/s).
// The result is always in [0, 1), so repeated application never overshoots.
func DampFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Damp moves current toward target at the given rate, independent of frame rate.
func Damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*DampFactor(rate, dt)
}

// Approach moves current toward target by at most step, never past it.
func Approach(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// CosineEase maps t in [0, 1] onto an ease-in/ease-out curve.
func CosineEase(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
