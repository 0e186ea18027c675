package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/noisy-bird/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantKey  input.Key
		wantRune rune
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp, 0},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.KeyRight, 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyEnter, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape, 0},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), input.KeyRune, 'j'},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeyRune, ' '},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.KeyCtrlC, 0},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), input.KeyCtrlQ, 0},
		{"ctrl q as rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), input.KeyCtrlQ, 0},
		{"delete backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), input.KeyBackspace, 0},
		{"function key unbound", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), input.KeyNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, r := translateKey(tt.ev)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantRune, r)
		})
	}
}
