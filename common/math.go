package common

import "math"

// TwoPi is a full revolution in radians.
const TwoPi = 2 * math.Pi

// Clamp restricts v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: v limited to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle normalizes an angle in radians into [0, 2π).
// Non-finite input is returned as 0 so callers always hold a renderable angle.
//
// Parameters:
//   - a: angle in radians
//
// Returns:
//   - float64: equivalent angle in [0, 2π)
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDelta returns the signed shortest difference b - a in (-π, π].
//
// Parameters:
//   - a: start angle in radians
//   - b: end angle in radians
//
// Returns:
//   - float64: shortest signed rotation from a to b
func AngleDelta(a, b float64) float64 {
	d := WrapAngle(b - a)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// Lerp linearly interpolates between a and b.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float64: a + (b-a)*t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseInOutCubic remaps t in [0, 1] so motion accelerates then decelerates.
// 4t³ below the midpoint, 1 - (-2t+2)³/2 above it.
//
// Parameters:
//   - t: linear progress in [0, 1]
//
// Returns:
//   - float64: eased progress in [0, 1]
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
