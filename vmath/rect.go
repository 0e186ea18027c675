package vmath

// Rect is an axis-aligned box in play-area units, origin at top-left, y grows down
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the trailing edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the lower edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the box midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports a box with no area; empty boxes intersect nothing
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports strict overlap; boxes sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}
