package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/app"
	"github.com/lixenwraith/noisy-bird/audio"
	"github.com/lixenwraith/noisy-bird/config"
	"github.com/lixenwraith/noisy-bird/input"
	"github.com/lixenwraith/noisy-bird/terminal"
	"github.com/lixenwraith/noisy-bird/window"
)

var (
	uiFlag     = flag.String("ui", "", "Frontend: terminal or window")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
	dataFlag   = flag.String("data", "", "Directory for settings and highscore")
	soundsFlag = flag.String("sounds", "", "Directory holding cue sounds")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNOISY BIRD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(resolveEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "noisy-bird: %v\n", err)
		os.Exit(1)
	}
}

// resolveEnv layers command-line flags over the environment
func resolveEnv() config.Env {
	env := config.LoadEnv()
	if *debugFlag {
		env.Debug = true
	}
	if *dataFlag != "" {
		env.DataDir = *dataFlag
	}
	if *soundsFlag != "" {
		env.SoundDir = *soundsFlag
	}
	switch ui := strings.ToLower(*uiFlag); ui {
	case config.FrontendTerminal, config.FrontendWindow:
		env.Frontend = ui
	}
	return env
}

func run(env config.Env) error {
	if logFile := setupLogging(env.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Info().Str("frontend", env.Frontend).Str("data", env.DataDir).Msg("starting")

	store := config.NewStore(env.DataDir)
	settings := store.Load()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Volume = settings.Volume
	audioCfg.Muted = settings.Muted
	audioCfg.SoundDir = env.SoundDir
	player := audio.NewAudioEngine(audioCfg)
	if err := player.Start(); err != nil {
		log.Warn().Err(err).Msg("audio start failed, continuing without audio")
	}
	defer player.Stop()

	captureCfg := audio.DefaultCaptureConfig()
	captureCfg.SampleRate = env.SampleRate
	mic := audio.NewMicrophone(captureCfg)

	a := app.New(app.Config{
		Store:  store,
		Mic:    mic,
		Player: player,
	})
	defer a.Close()

	keys := input.DefaultKeyTable()
	if env.Frontend == config.FrontendWindow {
		return window.Run(a, keys)
	}
	return runTerminal(a, keys, terminal.ParseColorMode(*colorFlag))
}

func runTerminal(a *app.App, keys *input.KeyTable, mode terminal.ColorMode) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.NewRunner(screen, a, keys, mode).Run(ctx)
}
