// Package vmath is the float64 geometry kernel shared by physics and rendering
// All operations are pure value functions; no fused or approximate math is used so results
// are bit-reproducible across runs
package vmath

import "math"

// Sign returns -1 for negative x and +1 otherwise, including zero
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Abs returns the absolute value of x
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Min returns the smaller of a and b
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// InUnit reports whether x lies in the closed interval [0, 1]
func InUnit(x float64) bool {
	return x >= 0 && x <= 1
}
