package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Frontend names
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Environment variable names
const (
	EnvDataDir    = "NOISY_BIRD_DATA_DIR"
	EnvSoundDir   = "NOISY_BIRD_SOUND_DIR"
	EnvDebug      = "NOISY_BIRD_DEBUG"
	EnvFrontend   = "NOISY_BIRD_FRONTEND"
	EnvSampleRate = "NOISY_BIRD_SAMPLE_RATE"
)

// Env is the process-level configuration resolved from the environment
type Env struct {
	DataDir    string
	SoundDir   string
	Debug      bool
	Frontend   string
	SampleRate float64 // 0 detects the device default
}

// DefaultEnv returns the values used when nothing is set
func DefaultEnv() Env {
	return Env{
		DataDir:  "score",
		SoundDir: "sounds",
		Frontend: FrontendTerminal,
	}
}

// LoadEnv loads optional dotenv files (default ".env") without overriding the real environment,
// then resolves Env; malformed values keep their defaults
func LoadEnv(files ...string) Env {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("dotenv load failed")
	}
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) Env {
	e := DefaultEnv()
	if v := strings.TrimSpace(getenv(EnvDataDir)); v != "" {
		e.DataDir = v
	}
	if v := strings.TrimSpace(getenv(EnvSoundDir)); v != "" {
		e.SoundDir = v
	}
	if v := strings.TrimSpace(getenv(EnvDebug)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			e.Debug = b
		}
	}
	if v := strings.ToLower(strings.TrimSpace(getenv(EnvFrontend))); v == FrontendTerminal || v == FrontendWindow {
		e.Frontend = v
	}
	if v := strings.TrimSpace(getenv(EnvSampleRate)); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			e.SampleRate = r
		}
	}
	return e
}
