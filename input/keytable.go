package input

import "unicode"

// Key is a frontend-neutral special key; frontends translate their native codes
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, see rune argument
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyCtrlC
	KeyCtrlQ
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, enter, escape)
	SpecialKeys map[Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]IntentType{
			KeyCtrlC:  IntentQuit,
			KeyCtrlQ:  IntentQuit,
			KeyEscape: IntentBack,
			KeyUp:     IntentUp,
			KeyDown:   IntentDown,
			KeyLeft:   IntentLeft,
			KeyRight:  IntentRight,
			KeyEnter:  IntentConfirm,
		},
		Runes: map[rune]IntentType{
			' ': IntentConfirm,
			'm': IntentToggleMute,
			'p': IntentTogglePause,
			'f': IntentToggleFPS,
			's': IntentSettings,
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
		},
	}
}

// Resolve maps one key event to an intent; unbound keys become IntentOther
func (kt *KeyTable) Resolve(key Key, r rune) Intent {
	switch key {
	case KeyNone:
		return Intent{}
	case KeyRune:
		if t, ok := kt.Runes[unicode.ToLower(r)]; ok {
			return Intent{Type: t, Char: r}
		}
		return Intent{Type: IntentOther, Char: r}
	default:
		if t, ok := kt.SpecialKeys[key]; ok {
			return Intent{Type: t}
		}
		return Intent{Type: IntentOther}
	}
}
