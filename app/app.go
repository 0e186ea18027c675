package app

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/audio"
	"github.com/lixenwraith/noisy-bird/config"
	"github.com/lixenwraith/noisy-bird/engine"
	"github.com/lixenwraith/noisy-bird/game"
	"github.com/lixenwraith/noisy-bird/input"
	"github.com/lixenwraith/noisy-bird/render"
	"github.com/lixenwraith/noisy-bird/status"
	"github.com/lixenwraith/noisy-bird/ui"
)

// Store is the settings and highscore persistence used by the app
type Store interface {
	Load() config.Settings
	Save(config.Settings)
	LoadHighscore() int
	SaveHighscore(int)
}

// Microphone is the capture source; Degraded and SampleRate are reported on the debug overlay
type Microphone interface {
	game.VolumeSource
	Degraded() bool
	SampleRate() float64
}

// Config wires the app's collaborators
type Config struct {
	Store    Store
	Mic      Microphone
	Player   audio.Player
	Time     engine.TimeProvider // nil uses the monotonic clock
	Registry *status.Registry    // nil creates one
	Rand     *rand.Rand
}

// App is the screen controller: it routes intents, steps the session on ticks and builds frames
// Frontends call HandleIntent, Tick and Frame from a single goroutine
type App struct {
	screen         render.Screen
	settingsReturn render.Screen
	resumeOnBack   bool // Round was running when settings opened

	store    Store
	mic      Microphone
	player   audio.Player
	registry *status.Registry

	clock    *engine.PausableClock
	session  *game.Session
	menu     *ui.Menu
	settings *ui.SettingsMenu
	values   config.Settings

	lastTick time.Time
	showFPS  bool
	fps      fpsCounter
	quit     bool
}

// New loads settings and highscore and returns an app at the main menu
func New(cfg Config) *App {
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}
	if cfg.Player == nil {
		cfg.Player = nopPlayer{}
	}

	a := &App{
		screen:   render.ScreenMenu,
		store:    cfg.Store,
		mic:      cfg.Mic,
		player:   cfg.Player,
		registry: cfg.Registry,
		clock:    engine.NewPausableClock(cfg.Time),
		menu:     ui.NewMenu(),
	}

	a.values = a.store.Load()
	a.settings = ui.NewSettingsMenu(a.values)
	a.applySettings()

	sessionCfg := game.Config{
		Saver:     a.store,
		Listener:  &cueListener{app: a},
		Rand:      cfg.Rand,
		Control:   a.control(),
		Highscore: a.store.LoadHighscore(),
	}
	if cfg.Mic != nil {
		sessionCfg.Mic = cfg.Mic
	}
	a.session = game.NewSession(sessionCfg)
	a.fps.reset(a.clock.RealTime())

	log.Info().
		Float64("volume", a.values.Volume).
		Float64("sensitivity", a.values.Sensitivity).
		Float64("threshold", a.values.MicThreshold).
		Int("highscore", a.session.Highscore()).
		Msg("app ready")
	return a
}

// HandleIntent routes one input event to the current screen
func (a *App) HandleIntent(in input.Intent) {
	if in.Type == input.IntentQuit {
		a.Close()
		a.quit = true
		return
	}
	if !in.IsKeyPress() {
		return
	}

	switch a.screen {
	case render.ScreenMenu:
		a.handleMenu(in)
	case render.ScreenInstructions:
		a.screen = render.ScreenMenu
	case render.ScreenSettings:
		a.handleSettings(in)
	case render.ScreenPlaying:
		a.handlePlaying(in)
	case render.ScreenGameOver:
		a.session.Acknowledge()
		a.screen = render.ScreenMenu
	}
}

func (a *App) handleMenu(in input.Intent) {
	switch in.Type {
	case input.IntentUp:
		a.menu.Up()
	case input.IntentDown:
		a.menu.Down()
	case input.IntentConfirm:
		switch a.menu.Selected() {
		case ui.MenuStart:
			a.startRound()
		case ui.MenuInstructions:
			a.screen = render.ScreenInstructions
		case ui.MenuSettings:
			a.openSettings(render.ScreenMenu)
		case ui.MenuQuit:
			a.quit = true
		}
	}
}

func (a *App) handleSettings(in input.Intent) {
	switch in.Type {
	case input.IntentUp:
		a.settings.Up()
	case input.IntentDown:
		a.settings.Down()
	case input.IntentLeft:
		if a.settings.Adjust(-1) {
			a.commitSettings()
		}
	case input.IntentRight:
		if a.settings.Adjust(+1) {
			a.commitSettings()
		}
	case input.IntentConfirm:
		changed, back := a.settings.Activate()
		if changed {
			a.commitSettings()
		}
		if back {
			a.closeSettings()
		}
	case input.IntentBack:
		a.closeSettings()
	}
}

func (a *App) handlePlaying(in input.Intent) {
	switch in.Type {
	case input.IntentToggleMute:
		a.values.Muted = !a.values.Muted
		a.settings.SetValues(a.values)
		a.commitValues()
	case input.IntentTogglePause:
		paused := a.clock.Toggle()
		log.Debug().Bool("paused", paused).Msg("pause toggled")
	case input.IntentToggleFPS:
		a.showFPS = !a.showFPS
	case input.IntentSettings:
		a.openSettings(render.ScreenPlaying)
	case input.IntentBack:
		a.endRound()
	}
}

func (a *App) startRound() {
	a.clock.Resume()
	if err := a.session.StartRound(); err != nil {
		log.Warn().Err(err).Msg("round start rejected")
		return
	}
	a.lastTick = a.clock.Now()
	a.screen = render.ScreenPlaying
}

// endRound finishes a running round without death feedback
func (a *App) endRound() {
	a.clock.Resume()
	if a.session.EndRound() {
		a.screen = render.ScreenGameOver
	}
}

func (a *App) openSettings(from render.Screen) {
	a.settingsReturn = from
	a.resumeOnBack = false
	if from == render.ScreenPlaying && !a.clock.IsPaused() {
		a.clock.Pause()
		a.resumeOnBack = true
	}
	a.settings.SetValues(a.values)
	a.screen = render.ScreenSettings
}

func (a *App) closeSettings() {
	a.screen = a.settingsReturn
	if a.resumeOnBack {
		a.clock.Resume()
		a.resumeOnBack = false
	}
}

// commitSettings takes the edited values from the settings screen
func (a *App) commitSettings() {
	a.values = a.settings.Values()
	a.commitValues()
}

// commitValues applies and persists the current values
func (a *App) commitValues() {
	a.applySettings()
	a.store.Save(a.values)
}

func (a *App) applySettings() {
	a.player.SetVolume(a.values.Volume)
	a.player.SetMuted(a.values.Muted)
	if a.session != nil {
		a.session.SetControl(a.control())
	}
}

func (a *App) control() game.Control {
	return game.Control{Sensitivity: a.values.Sensitivity, Threshold: a.values.MicThreshold}
}

// Tick advances one frame of game time while a round is running and unpaused
func (a *App) Tick() {
	a.fps.tick(a.clock.RealTime())

	if a.screen == render.ScreenPlaying && !a.clock.IsPaused() {
		now := a.clock.Now()
		dt := now.Sub(a.lastTick)
		a.lastTick = now
		a.session.Update(now, dt)
		if a.session.State() == game.StateRoundOver {
			a.screen = render.ScreenGameOver
		}
	}

	a.publishMetrics()
}

func (a *App) publishMetrics() {
	raw, smoothed := a.session.Volumes()
	if a.mic != nil {
		// Level meter stays live while paused
		raw = a.mic.LatestVolume()
		a.registry.Bools.Get(status.KeyMicDegraded).Store(a.mic.Degraded())
		a.registry.Floats.Get(status.KeyMicRate).Store(a.mic.SampleRate())
	}
	a.registry.Floats.Get(status.KeyMicRaw).Store(raw)
	a.registry.Floats.Get(status.KeyMicSmoothed).Store(smoothed)
	a.registry.Floats.Get(status.KeyFPS).Store(a.fps.rate())
	a.registry.Ints.Get(status.KeyObstacles).Store(int64(len(a.session.Obstacles())))
	a.registry.Ints.Get(status.KeyPowerUps).Store(int64(len(a.session.PowerUps())))
	if st, ok := a.player.(statsReporter); ok {
		played, skipped := st.Stats()
		a.registry.Ints.Get(status.KeyCuesPlayed).Store(int64(played))
		a.registry.Ints.Get(status.KeyCuesSkipped).Store(int64(skipped))
	}
	if s, ok := a.player.(silentReporter); ok {
		a.registry.Bools.Get(status.KeyAudioSilent).Store(s.IsSilent())
	}
}

// Close ends any running round, releasing the microphone and saving the highscore
func (a *App) Close() {
	if a.session.State() == game.StatePlaying {
		a.endRound()
	}
}

// Quit reports that the player asked to exit
func (a *App) Quit() bool { return a.quit }

// Screen returns the current screen
func (a *App) Screen() render.Screen { return a.screen }

// Paused reports a frozen round
func (a *App) Paused() bool { return a.clock.IsPaused() }

// Settings returns the active settings
func (a *App) Settings() config.Settings { return a.values }

// Session exposes the round state for inspection
func (a *App) Session() *game.Session { return a.session }

// Registry returns the debug metrics
func (a *App) Registry() *status.Registry { return a.registry }
