package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/noisy-bird/render"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// Surface paints play-area geometry onto terminal cells
// Shapes cover every cell whose center lies inside them; shapes smaller than a
// cell still mark the cell holding their center
type Surface struct {
	screen tcell.Screen
	mode   ColorMode
	w, h   float64
}

// NewSurface wraps screen with a logical play area of w by h units
func NewSurface(screen tcell.Screen, mode ColorMode, w, h float64) *Surface {
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	return &Surface{screen: screen, mode: mode, w: w, h: h}
}

// Bounds returns the logical play-area size
func (s *Surface) Bounds() (float64, float64) { return s.w, s.h }

// scale returns cells per logical unit on each axis
func (s *Surface) scale() (float64, float64, int, int) {
	cols, rows := s.screen.Size()
	return float64(cols) / s.w, float64(rows) / s.h, cols, rows
}

func (s *Surface) Clear(c render.RGB) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c, s.mode)))
}

func (s *Surface) FillRect(r vmath.Rect, c render.RGB) {
	if r.Empty() {
		return
	}
	s.fill(r, c, func(x, y float64) bool {
		return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
	})
}

func (s *Surface) FillRotatedRect(r vmath.Rect, deg float64, c render.RGB) {
	if r.Empty() {
		return
	}
	cx, cy := r.Center()
	hw, hh := r.W/2, r.H/2
	s.fill(rotatedBounds(r), c, func(x, y float64) bool {
		lx, ly := vmath.Rotate(x-cx, y-cy, -deg)
		return math.Abs(lx) <= hw && math.Abs(ly) <= hh
	})
}

func (s *Surface) FillEllipse(r vmath.Rect, deg float64, c render.RGB) {
	if r.Empty() {
		return
	}
	cx, cy := r.Center()
	a, b := r.W/2, r.H/2
	s.fill(rotatedBounds(r), c, func(x, y float64) bool {
		lx, ly := vmath.Rotate(x-cx, y-cy, -deg)
		return (lx*lx)/(a*a)+(ly*ly)/(b*b) <= 1
	})
}

func (s *Surface) FillCircle(cx, cy, radius float64, c render.RGB) {
	if radius <= 0 {
		return
	}
	box := vmath.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
	s.fill(box, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// Text writes s left to right from the cell holding x, y, keeping the cell background
// Glyph size is fixed by the terminal; size is ignored
func (s *Surface) Text(str string, _ float64, x, y float64, c render.RGB) {
	sx, sy, cols, rows := s.scale()
	col := int(math.Floor(x * sx))
	row := int(math.Floor(y * sy))
	if row < 0 || row >= rows {
		return
	}
	fg := toColor(c, s.mode)
	for _, r := range str {
		if col >= cols {
			return
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col++
	}
}

func (s *Surface) Present() {
	s.screen.Show()
}

// fill paints the cells overlapping box whose centers satisfy inside
func (s *Surface) fill(box vmath.Rect, c render.RGB, inside func(x, y float64) bool) {
	sx, sy, cols, rows := s.scale()
	if cols <= 0 || rows <= 0 {
		return
	}

	c0 := max(int(math.Floor(box.X*sx)), 0)
	c1 := min(int(math.Ceil(box.Right()*sx)), cols)
	r0 := max(int(math.Floor(box.Y*sy)), 0)
	r1 := min(int(math.Ceil(box.Bottom()*sy)), rows)

	style := tcell.StyleDefault.Background(toColor(c, s.mode))
	painted := false
	for row := r0; row < r1; row++ {
		y := (float64(row) + 0.5) / sy
		for col := c0; col < c1; col++ {
			x := (float64(col) + 0.5) / sx
			if inside(x, y) {
				s.screen.SetContent(col, row, ' ', nil, style)
				painted = true
			}
		}
	}
	if painted {
		return
	}

	cx, cy := box.Center()
	col := int(math.Floor(cx * sx))
	row := int(math.Floor(cy * sy))
	if col >= 0 && col < cols && row >= 0 && row < rows {
		s.screen.SetContent(col, row, ' ', nil, style)
	}
}

// rotatedBounds returns a box containing r under any rotation about its center
func rotatedBounds(r vmath.Rect) vmath.Rect {
	cx, cy := r.Center()
	radius := math.Hypot(r.W, r.H) / 2
	return vmath.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}
