package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotatedCornersUnturned(t *testing.T) {
	c := RotatedCorners(Rect{X: 10, Y: 20, W: 40, H: 30}, 0)

	assert.InDelta(t, 10, c[0].X, 1e-9)
	assert.InDelta(t, 20, c[0].Y, 1e-9)
	assert.InDelta(t, 50, c[2].X, 1e-9)
	assert.InDelta(t, 50, c[2].Y, 1e-9)
}

func TestRotatedCornersKeepCenterAndDiagonal(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 30, H: 10}
	c := RotatedCorners(r, 37)

	cx, cy := r.Center()
	mx, my := (c[0].X+c[2].X)/2, (c[0].Y+c[2].Y)/2
	assert.InDelta(t, cx, mx, 1e-9)
	assert.InDelta(t, cy, my, 1e-9)
	assert.InDelta(t, math.Hypot(30, 10), math.Hypot(c[2].X-c[0].X, c[2].Y-c[0].Y), 1e-9)
}

func TestEllipsePointsLieOnEllipse(t *testing.T) {
	r := Rect{X: 100, Y: 50, W: 40, H: 20}
	pts := EllipsePoints(r, 0, 16)

	assert.Len(t, pts, 16)
	for _, p := range pts {
		dx, dy := (p.X-120)/20, (p.Y-60)/10
		assert.InDelta(t, 1, dx*dx+dy*dy, 1e-9)
	}
}

func TestEllipsePointsMinimumVertices(t *testing.T) {
	assert.Len(t, EllipsePoints(Rect{W: 1, H: 1}, 0, 1), 3)
}
