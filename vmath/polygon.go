package vmath

import "math"

// Point is a position in play-area units
type Point struct {
	X, Y float64
}

// RotatedCorners returns the corners of r turned deg degrees about its center, clockwise in screen order
func RotatedCorners(r Rect, deg float64) [4]Point {
	cx, cy := r.Center()
	hw, hh := r.W/2, r.H/2
	offsets := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var out [4]Point
	for i, o := range offsets {
		x, y := Rotate(o.X, o.Y, deg)
		out[i] = Point{X: cx + x, Y: cy + y}
	}
	return out
}

// EllipsePoints approximates the ellipse inscribed in r, turned deg degrees, with n vertices
func EllipsePoints(r Rect, deg float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	cx, cy := r.Center()
	a, b := r.W/2, r.H/2

	out := make([]Point, n)
	for i := range out {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		x, y := Rotate(a*c, b*s, deg)
		out[i] = Point{X: cx + x, Y: cy + y}
	}
	return out
}
