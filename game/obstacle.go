package game

import (
	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// Obstacle is a scrolling pipe pair with a vertical gap
type Obstacle struct {
	X          float64
	Width      float64
	TopHeight  float64
	Gap        float64
	PlayHeight float64

	passed bool
}

// NewObstacle creates a pipe pair at x
// Top height is clamped so the gap always fits inside the play area
func NewObstacle(x, width, topHeight, gap, playHeight float64) *Obstacle {
	return &Obstacle{
		X:          x,
		Width:      width,
		TopHeight:  vmath.Clamp(topHeight, 0, max(0, playHeight-gap)),
		Gap:        gap,
		PlayHeight: playHeight,
	}
}

// Move scrolls the obstacle left by speed units
func (o *Obstacle) Move(speed float64) {
	o.X -= speed
}

// Top returns the upper segment box
func (o *Obstacle) Top() vmath.Rect {
	return vmath.Rect{X: o.X, Y: 0, W: o.Width, H: o.TopHeight}
}

// Bottom returns the lower segment box, empty when the gap reaches the floor
func (o *Obstacle) Bottom() vmath.Rect {
	y := o.TopHeight + o.Gap
	return vmath.Rect{X: o.X, Y: y, W: o.Width, H: o.PlayHeight - y}
}

// CollidesWith reports overlap between the bird box and either segment
func (o *Obstacle) CollidesWith(b vmath.Rect) bool {
	return b.Intersects(o.Top()) || b.Intersects(o.Bottom())
}

// Passed reports whether the obstacle has already scored
func (o *Obstacle) Passed() bool {
	return o.passed
}

// CheckPassed latches the passed flag the first time the trailing edge is left of birdX
// Returns true only on that first crossing
func (o *Obstacle) CheckPassed(birdX float64) bool {
	if o.passed || o.X+o.Width >= birdX {
		return false
	}
	o.passed = true
	return true
}

// IsOffScreen reports the trailing edge has reached the removal margin
// The bound is inclusive, one frame earlier than a strict comparison, so an obstacle
// spawned at 880 moving 3 per frame is removed after exactly 320 frames
func (o *Obstacle) IsOffScreen() bool {
	return o.X+o.Width <= -constant.ObstacleRemoveMargin
}
