package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/app"
	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/input"
	"github.com/lixenwraith/noisy-bird/render"
)

// Game adapts the app to ebiten's update and draw callbacks
type Game struct {
	app     *app.App
	keys    *input.KeyTable
	surface *Surface

	pressed []ebiten.Key
	chars   []rune
}

// NewGame binds the app to a window frontend
func NewGame(a *app.App, keys *input.KeyTable) *Game {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Game{
		app:     a,
		keys:    keys,
		surface: NewSurface(constant.PlayWidth, constant.PlayHeight),
	}
}

// Update routes input and advances one frame; returns ebiten.Termination on quit
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.app.HandleIntent(input.Intent{Type: input.IntentQuit})
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		if key := translateKey(k, ctrl); key != input.KeyNone {
			g.app.HandleIntent(g.keys.Resolve(key, 0))
		}
	}
	if !ctrl {
		g.chars = ebiten.AppendInputChars(g.chars[:0])
		for _, r := range g.chars {
			g.app.HandleIntent(g.keys.Resolve(input.KeyRune, r))
		}
	}

	if g.app.Quit() {
		return ebiten.Termination
	}

	g.app.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	render.Paint(g.surface, g.app.Frame())
}

// Layout keeps the logical play area; ebiten scales it to the window
func (g *Game) Layout(_, _ int) (int, int) {
	return constant.PlayWidth, constant.PlayHeight
}

// Run opens the window and blocks until the player quits or the window closes
func Run(a *app.App, keys *input.KeyTable) error {
	ebiten.SetWindowSize(constant.PlayWidth, constant.PlayHeight)
	ebiten.SetWindowTitle("Noisy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(constant.TargetTPS)

	log.Info().Msg("window frontend starting")
	err := ebiten.RunGame(NewGame(a, keys))
	a.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
