package render

import "github.com/lixenwraith/noisy-bird/vmath"

// Surface accepts draw commands in play-area units; frontends scale to their device
// Rotation angles are in degrees, counter-clockwise, about the box center
type Surface interface {
	// Bounds returns the logical play-area size
	Bounds() (w, h float64)
	Clear(c RGB)
	FillRect(r vmath.Rect, c RGB)
	FillRotatedRect(r vmath.Rect, deg float64, c RGB)
	FillEllipse(r vmath.Rect, deg float64, c RGB)
	FillCircle(cx, cy, radius float64, c RGB)
	// Text draws s with its top-left at x, y; size is the nominal glyph height
	Text(s string, size, x, y float64, c RGB)
	Present()
}
