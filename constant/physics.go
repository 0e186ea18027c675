package constant

// Bird body, per-frame integration (not scaled by wall-clock dt)
const (
	BirdSpawnX = 150.0
	BirdSpawnY = 200.0
	BirdWidth  = 40.0
	BirdHeight = 30.0

	// BirdGravity is added to vertical velocity every frame
	BirdGravity = 0.32

	// BirdFlapImpulse replaces vertical velocity on flap (upward)
	BirdFlapImpulse = 9.0

	// BirdMaxFall clamps vertical velocity in both directions
	BirdMaxFall = 7.0

	// BirdTiltFactor converts velocity to drawn tilt in degrees
	BirdTiltFactor = 4.0
	BirdTiltMin    = -25.0
	BirdTiltMax    = 45.0
)
