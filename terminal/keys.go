package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/noisy-bird/input"
)

// translateKey maps a tcell key event to a neutral key and rune
func translateKey(ev *tcell.EventKey) (input.Key, rune) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch ev.Rune() {
			case 'c', 'C':
				return input.KeyCtrlC, 0
			case 'q', 'Q':
				return input.KeyCtrlQ, 0
			}
		}
		return input.KeyRune, ev.Rune()
	case tcell.KeyUp:
		return input.KeyUp, 0
	case tcell.KeyDown:
		return input.KeyDown, 0
	case tcell.KeyLeft:
		return input.KeyLeft, 0
	case tcell.KeyRight:
		return input.KeyRight, 0
	case tcell.KeyEnter:
		return input.KeyEnter, 0
	case tcell.KeyEscape:
		return input.KeyEscape, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyBackspace, 0
	case tcell.KeyTab:
		return input.KeyTab, 0
	case tcell.KeyCtrlC:
		return input.KeyCtrlC, 0
	case tcell.KeyCtrlQ:
		return input.KeyCtrlQ, 0
	default:
		return input.KeyNone, 0
	}
}
