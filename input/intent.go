package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, Ctrl+Q
	IntentBack   // ESC: leave screen or end round
	IntentResize // Surface resize event

	// Menu navigation
	IntentUp
	IntentDown
	IntentLeft    // Decrease selected setting
	IntentRight   // Increase selected setting
	IntentConfirm // Enter, Space

	// In-round toggles
	IntentToggleMute  // m
	IntentTogglePause // p
	IntentToggleFPS   // f
	IntentSettings    // s

	// IntentOther is any unbound key; dismisses "press any key" screens
	IntentOther
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentBack:        "back",
	IntentResize:      "resize",
	IntentUp:          "up",
	IntentDown:        "down",
	IntentLeft:        "left",
	IntentRight:       "right",
	IntentConfirm:     "confirm",
	IntentToggleMute:  "toggle_mute",
	IntentTogglePause: "toggle_pause",
	IntentToggleFPS:   "toggle_fps",
	IntentSettings:    "settings",
	IntentOther:       "other",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no frontend dependencies
type Intent struct {
	Type IntentType
	Char rune // Originating rune, 0 for special keys
}

// IsKeyPress reports an intent produced by a key, as opposed to resize or none
func (i Intent) IsKeyPress() bool {
	return i.Type != IntentNone && i.Type != IntentResize
}
