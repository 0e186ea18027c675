package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/noisy-bird/input"
)

// specialKeys maps non-printing ebiten keys; printable keys arrive as input chars
var specialKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:     input.KeyUp,
	ebiten.KeyArrowDown:   input.KeyDown,
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeyBackspace:   input.KeyBackspace,
	ebiten.KeyTab:         input.KeyTab,
}

// translateKey maps a just-pressed key; ctrl selects the Ctrl+C and Ctrl+Q chords
func translateKey(k ebiten.Key, ctrl bool) input.Key {
	if ctrl {
		switch k {
		case ebiten.KeyC:
			return input.KeyCtrlC
		case ebiten.KeyQ:
			return input.KeyCtrlQ
		}
	}
	if key, ok := specialKeys[k]; ok {
		return key
	}
	return input.KeyNone
}
