package game

import (
	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// Bird is the player body; only the vertical axis moves
type Bird struct {
	X, Y float64
	W, H float64
	Vel  float64 // Vertical velocity, positive is down

	Gravity     float64
	FlapImpulse float64
	MaxFall     float64
}

// NewBird creates a bird at the spawn point with default physics
func NewBird() *Bird {
	b := &Bird{
		W:           constant.BirdWidth,
		H:           constant.BirdHeight,
		Gravity:     constant.BirdGravity,
		FlapImpulse: constant.BirdFlapImpulse,
		MaxFall:     constant.BirdMaxFall,
	}
	b.Reset()
	return b
}

// Reset returns the bird to the spawn point at rest
func (b *Bird) Reset() {
	b.X = constant.BirdSpawnX
	b.Y = constant.BirdSpawnY
	b.Vel = 0
}

// Flap replaces velocity with the upward impulse
func (b *Bird) Flap() {
	b.Vel = -b.FlapImpulse
}

// Update integrates one frame: fixed gravity step, clamp, then position
func (b *Bird) Update() {
	b.Vel += b.Gravity
	b.Vel = vmath.Clamp(b.Vel, -b.MaxFall, b.MaxFall)
	b.Y += b.Vel
}

// IsOutOfBounds reports the bird more than its height above the top, or resting past the floor
func (b *Bird) IsOutOfBounds(playHeight float64) bool {
	return b.Y < -b.H || b.Y > playHeight-b.H
}

// Bounds returns the collision box
func (b *Bird) Bounds() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Tilt returns the drawn rotation in degrees, nose up while rising
func (b *Bird) Tilt() float64 {
	return vmath.Clamp(-b.Vel*constant.BirdTiltFactor, constant.BirdTiltMin, constant.BirdTiltMax)
}
