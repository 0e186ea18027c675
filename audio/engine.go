package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/status"
)

// Player is the cue playback surface used by the game
type Player interface {
	Play(SoundType) bool
	SetVolume(float64)
	SetMuted(bool)
	IsMuted() bool
}

// outputDevice abstracts the speaker singleton for tests
type outputDevice interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

type beepSpeaker struct{}

func (beepSpeaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (beepSpeaker) Play(s beep.Streamer) { speaker.Play(s) }

func (beepSpeaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// AudioEngine plays feedback cues through the beep speaker
// A failed speaker init puts the engine in silent mode; every Play then reports false
type AudioEngine struct {
	config *AudioConfig
	rate   beep.SampleRate
	cache  *soundCache
	device outputDevice

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	volume     status.AtomicFloat

	played  atomic.Uint64
	skipped atomic.Uint64

	mu sync.Mutex // Serializes Start/Stop
}

// NewAudioEngine creates an engine; nil cfg uses defaults
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	return newAudioEngine(cfg, beepSpeaker{})
}

func newAudioEngine(cfg *AudioConfig, device outputDevice) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = constant.AudioSampleRate
	}
	ae := &AudioEngine{
		config: cfg,
		rate:   beep.SampleRate(rate),
		device: device,
	}
	ae.cache = newSoundCache(cfg.SoundDir, ae.rate, cfg.Synthesize)
	ae.muted.Store(cfg.Muted)
	ae.SetVolume(cfg.Volume)
	return ae
}

// Start opens the output device and preloads cues
// Device failure is not returned: the engine runs silent
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running.Load() {
		return ErrEngineAlreadyStart
	}

	if err := ae.device.Init(ae.rate, ae.rate.N(constant.AudioBufferDuration)); err != nil {
		log.Warn().Err(fmt.Errorf("%w: %w", ErrNoAudioBackend, err)).Msg("running silent")
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return nil
	}

	ae.cache.preload()
	ae.running.Store(true)
	log.Info().Int("rate", int(ae.rate)).Msg("audio engine started")
	return nil
}

// Stop releases the output device, idempotent
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if !ae.silentMode.Load() {
		ae.device.Close()
	}
}

// Play queues cue st at the current volume unless muted
// Returns false when the cue was skipped
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() {
		ae.skipped.Add(1)
		return false
	}

	vol := ae.volume.Load()
	buf := ae.cache.get(st)
	if buf == nil || buf.Len() == 0 || vol <= 0 {
		ae.skipped.Add(1)
		return false
	}

	// Gain is relative: output = input * (1 + Gain)
	ae.device.Play(&effects.Gain{
		Streamer: buf.Streamer(0, buf.Len()),
		Gain:     vol - 1,
	})
	ae.played.Add(1)
	return true
}

// SetMuted sets mute state
func (ae *AudioEngine) SetMuted(muted bool) {
	ae.muted.Store(muted)
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and not silent
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// IsSilent reports a failed output device
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// SetVolume updates cue volume, clamped to 0.0-1.0
func (ae *AudioEngine) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	ae.volume.Store(vol)
}

// Volume returns the current cue volume
func (ae *AudioEngine) Volume() float64 {
	return ae.volume.Load()
}

// Stats returns played and skipped cue counts
func (ae *AudioEngine) Stats() (played, skipped uint64) {
	return ae.played.Load(), ae.skipped.Load()
}
