package app

import (
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/audio"
	"github.com/lixenwraith/noisy-bird/game"
)

// cueListener maps gameplay events to feedback sounds
type cueListener struct {
	app *App
}

func (l *cueListener) OnDeath() {
	l.app.player.Play(audio.SoundDeath)
}

func (l *cueListener) OnScore(points int) {
	l.app.player.Play(audio.SoundPoint)
	log.Debug().Int("points", points).Int("score", l.app.session.Score()).Msg("obstacle passed")
}

func (l *cueListener) OnCollect(kind game.PowerUpKind) {
	l.app.player.Play(audio.SoundPoint)
	log.Debug().Stringer("kind", kind).Msg("power-up collected")
}

func (l *cueListener) OnPowerUpSpawned(kind game.PowerUpKind) {
	l.app.player.Play(audio.SoundPowerUp)
}

type statsReporter interface {
	Stats() (played, skipped uint64)
}

type silentReporter interface {
	IsSilent() bool
}

// nopPlayer is used when no audio output is wired
type nopPlayer struct{}

func (nopPlayer) Play(audio.SoundType) bool { return false }
func (nopPlayer) SetVolume(float64)         {}
func (nopPlayer) SetMuted(bool)             {}
func (nopPlayer) IsMuted() bool             { return true }
