package game

import "github.com/lixenwraith/noisy-bird/vmath"

// PowerUpKind selects the effect applied on collection
type PowerUpKind int

const (
	PowerUpSlow   PowerUpKind = iota // Halves scroll speed
	PowerUpDouble                    // Doubles obstacle points
	powerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSlow:
		return "slow"
	case PowerUpDouble:
		return "double"
	default:
		return "unknown"
	}
}

// PowerUp is a scrolling square pickup
type PowerUp struct {
	Kind   PowerUpKind
	X, Y   float64
	Size   float64
	Active bool
}

// NewPowerUp creates an active pickup; unknown kinds become slow
func NewPowerUp(kind PowerUpKind, x, y, size float64) *PowerUp {
	if kind < 0 || kind >= powerUpKindCount {
		kind = PowerUpSlow
	}
	return &PowerUp{Kind: kind, X: x, Y: y, Size: size, Active: true}
}

// Move scrolls left and deactivates once fully past the left edge
func (p *PowerUp) Move(speed float64) {
	p.X -= speed
	if p.X < -p.Size {
		p.Active = false
	}
}

// Bounds returns the pickup box
func (p *PowerUp) Bounds() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// CollidesWith reports overlap with the bird box
func (p *PowerUp) CollidesWith(b vmath.Rect) bool {
	return p.Bounds().Intersects(b)
}
