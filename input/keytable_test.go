package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  Key
		r    rune
		want IntentType
	}{
		{"none", KeyNone, 0, IntentNone},
		{"ctrl-c", KeyCtrlC, 0, IntentQuit},
		{"ctrl-q", KeyCtrlQ, 0, IntentQuit},
		{"escape", KeyEscape, 0, IntentBack},
		{"enter", KeyEnter, 0, IntentConfirm},
		{"space", KeyRune, ' ', IntentConfirm},
		{"arrow up", KeyUp, 0, IntentUp},
		{"vi down", KeyRune, 'j', IntentDown},
		{"mute", KeyRune, 'm', IntentToggleMute},
		{"mute upper", KeyRune, 'M', IntentToggleMute},
		{"pause", KeyRune, 'p', IntentTogglePause},
		{"fps", KeyRune, 'f', IntentToggleFPS},
		{"settings", KeyRune, 's', IntentSettings},
		{"unbound rune", KeyRune, 'x', IntentOther},
		{"unbound key", KeyTab, 0, IntentOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Resolve(tt.key, tt.r).Type)
		})
	}
}

func TestResolveKeepsChar(t *testing.T) {
	kt := DefaultKeyTable()
	assert.Equal(t, 'M', kt.Resolve(KeyRune, 'M').Char)
	assert.Equal(t, 'x', kt.Resolve(KeyRune, 'x').Char)
}

func TestIntentIsKeyPress(t *testing.T) {
	assert.False(t, Intent{}.IsKeyPress())
	assert.False(t, Intent{Type: IntentResize}.IsKeyPress())
	assert.True(t, Intent{Type: IntentOther}.IsKeyPress())
	assert.Equal(t, "toggle_pause", IntentTogglePause.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
