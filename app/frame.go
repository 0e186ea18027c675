package app

import (
	"fmt"

	"github.com/lixenwraith/noisy-bird/game"
	"github.com/lixenwraith/noisy-bird/render"
	"github.com/lixenwraith/noisy-bird/ui"
)

// Frame builds the view model for the current screen
func (a *App) Frame() *render.Frame {
	f := &render.Frame{
		Screen:    a.screen,
		Score:     a.session.Score(),
		Highscore: a.session.Highscore(),
	}

	switch a.screen {
	case render.ScreenMenu:
		f.Title = ui.Title
		f.Items = a.menu.Labels()
		f.Selected = a.menu.Index()
		f.Hint = ui.MenuHint
	case render.ScreenInstructions:
		f.Lines = ui.InstructionLines
	case render.ScreenSettings:
		f.Title = "Settings"
		for _, row := range a.settings.Rows() {
			f.Settings = append(f.Settings, render.SettingRow{Label: row.Label, Value: row.Value})
		}
		f.Selected = a.settings.Index()
		f.Hint = ui.SettingsHint
	case render.ScreenPlaying:
		a.fillRound(f)
	case render.ScreenGameOver:
		f.Title = ui.GameOverTitle
		f.Hint = ui.GameOverHint
	}
	return f
}

func (a *App) fillRound(f *render.Frame) {
	s := a.session
	now := a.clock.Now()

	bird := s.Bird()
	f.Bird = bird.Bounds()
	f.BirdTilt = bird.Tilt()

	for _, o := range s.Obstacles() {
		f.Pipes = append(f.Pipes, o.Top(), o.Bottom())
	}
	for _, p := range s.PowerUps() {
		f.PowerUps = append(f.PowerUps, render.PowerUpView{Box: p.Bounds(), Double: p.Kind == game.PowerUpDouble})
	}

	f.Slowed = s.SlowActive(now)
	f.Doubled = s.DoubleActive(now)
	f.Legend = ui.HUDLegend

	if a.values.ShowDebug || a.showFPS {
		raw, smoothed := s.Volumes()
		if a.mic != nil && a.clock.IsPaused() {
			raw = a.mic.LatestVolume()
		}
		f.DebugLine = fmt.Sprintf("Vol:%.2f Smooth:%.2f Blocks:%d", raw, smoothed, len(s.Obstacles()))
		if a.mic != nil && a.mic.Degraded() {
			f.DebugLine += " [no mic]"
		}
	}
	if a.values.ShowDebug {
		f.Metrics = a.registry.Lines()
	}
	if a.showFPS {
		f.FPSLine = fmt.Sprintf("FPS:%d", int(a.fps.rate()))
	}

	if a.clock.IsPaused() {
		f.Paused = true
		f.Title = ui.PausedTitle
		f.Hint = ui.PausedHint
	}
}
