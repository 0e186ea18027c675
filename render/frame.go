package render

import "github.com/lixenwraith/noisy-bird/vmath"

// Screen selects the scene drawn for a frame
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenSettings
	ScreenPlaying
	ScreenGameOver
)

// PowerUpView is a drawable pickup
type PowerUpView struct {
	Box    vmath.Rect
	Double bool
}

// SettingRow is a settings label with its current value
type SettingRow struct {
	Label string
	Value string
}

// Frame is the view model for one redraw; it owns copies, never live game state
type Frame struct {
	Screen Screen

	// Round scene
	Bird     vmath.Rect
	BirdTilt float64
	Pipes    []vmath.Rect
	PowerUps []PowerUpView
	Paused   bool
	Slowed   bool
	Doubled  bool

	Score     int
	Highscore int

	// HUD
	Legend    string
	DebugLine string // Empty hides the debug line
	FPSLine   string // Empty hides the FPS readout
	Metrics   []string

	// Menus and static screens
	Title    string
	Items    []string
	Selected int
	Settings []SettingRow
	Lines    []string
	Hint     string
}
