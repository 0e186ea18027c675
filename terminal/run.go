package terminal

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/app"
	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/input"
	"github.com/lixenwraith/noisy-bird/render"
)

// Runner drives the app on a tcell screen
type Runner struct {
	screen  tcell.Screen
	app     *app.App
	keys    *input.KeyTable
	surface *Surface
}

// NewRunner binds an initialized screen to the app
func NewRunner(screen tcell.Screen, a *app.App, keys *input.KeyTable, mode ColorMode) *Runner {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Runner{
		screen:  screen,
		app:     a,
		keys:    keys,
		surface: NewSurface(screen, mode, constant.PlayWidth, constant.PlayHeight),
	}
}

// Run loops until the player quits, ctx is cancelled or event polling fails
// The screen is not finalized; the caller owns its lifetime
func (r *Runner) Run(ctx context.Context) error {
	interval := frameInterval(r.app.Screen())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	pollErr := make(chan error, 1)
	go r.poll(events, pollErr, done)

	r.draw()
	for {
		select {
		case <-ctx.Done():
			r.app.Close()
			return nil

		case err := <-pollErr:
			r.app.Close()
			return err

		case ev := <-events:
			r.handleEvent(ev)
			if r.app.Quit() {
				return nil
			}
			r.draw()

		case <-ticker.C:
			r.app.Tick()
			r.draw()
		}

		if next := frameInterval(r.app.Screen()); next != interval {
			interval = next
			ticker.Reset(interval)
		}
	}
}

// poll forwards screen events until the screen is finalized or the loop exits
func (r *Runner) poll(events chan<- tcell.Event, errs chan<- error, done <-chan struct{}) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Bytes("stack", debug.Stack()).Msg("event loop panic")
			errs <- fmt.Errorf("event loop panic: %v", rec)
		}
	}()

	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (r *Runner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ch := translateKey(ev)
		r.app.HandleIntent(r.keys.Resolve(key, ch))
	case *tcell.EventResize:
		r.screen.Sync()
		r.app.HandleIntent(input.Intent{Type: input.IntentResize})
	}
}

func (r *Runner) draw() {
	render.Paint(r.surface, r.app.Frame())
}

// frameInterval slows redraws while no round is running
func frameInterval(s render.Screen) time.Duration {
	if s == render.ScreenPlaying {
		return constant.FrameUpdateInterval
	}
	return constant.MenuUpdateInterval
}
