package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Rotate turns the offset dx, dy by deg degrees, counter-clockwise as seen on a y-down surface
func Rotate(dx, dy, deg float64) (float64, float64) {
	s, c := math.Sincos(deg * math.Pi / 180)
	return dx*c + dy*s, dy*c - dx*s
}
