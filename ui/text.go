package ui

// Title is the menu heading
const Title = "NOISY BIRD"

// MenuHint is the footer on the main menu
const MenuHint = "UP/DOWN to move, ENTER to select"

// SettingsHint is the footer on the settings screen
const SettingsHint = "UP/DOWN select, LEFT/RIGHT change, ENTER toggle, ESC back"

// HUDLegend lists the in-round keys
const HUDLegend = "P:Pause  F:FPS  M:Mute  S:Settings  ESC:End"

// InstructionLines is the instructions screen body
var InstructionLines = []string{
	"Instructions:",
	"- Make noise into your mic to flap the bird.",
	"- Avoid pipes; collect power-ups.",
	"- Blue square: slow motion for 4s. Gold coin: double points for 5s.",
	"- Press M to mute, P to pause, F to toggle FPS, S for settings.",
	"",
	"Press any key to return.",
}

// GameOverTitle heads the round-over screen
const GameOverTitle = "GAME OVER"

// GameOverHint is the footer on the round-over screen
const GameOverHint = "Press any key to return to menu"

// PausedTitle overlays a paused round
const PausedTitle = "PAUSED"

// PausedHint is shown under the pause title
const PausedHint = "Press P to resume"
