package audio

import "github.com/lixenwraith/noisy-bird/constant"

// AudioConfig holds playback configuration
type AudioConfig struct {
	// Volume is the cue playback gain (0.0-1.0)
	Volume float64
	Muted  bool

	// SoundDir holds the cue assets
	SoundDir   string
	SampleRate int

	// Synthesize replaces missing assets with generated tones; when false missing cues are skipped
	Synthesize bool
}

// DefaultAudioConfig returns the persisted-settings defaults
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Volume:     constant.DefaultVolume,
		Muted:      constant.DefaultMuted,
		SoundDir:   "sounds",
		SampleRate: constant.AudioSampleRate,
		Synthesize: true,
	}
}
