package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TargetTPS is the tick rate requested from frame-driven frontends
	TargetTPS = 60

	// MenuUpdateInterval is the redraw interval while no round is running
	MenuUpdateInterval = 33 * time.Millisecond
)

// Play Area (logical units, frontends scale to their surface)
const (
	PlayWidth  = 800
	PlayHeight = 500
)
