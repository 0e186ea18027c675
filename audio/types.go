package audio

import "errors"

// SoundType identifies a feedback cue
type SoundType int

const (
	SoundDeath   SoundType = iota // Collision or out-of-bounds
	SoundPoint                    // Obstacle passed, power-up collected
	SoundPowerUp                  // Power-up spawned
	soundTypeCount
)

// soundFiles maps cues to asset names under the sound directory
var soundFiles = [soundTypeCount]string{
	SoundDeath:   "die.mp3",
	SoundPoint:   "point.mp3",
	SoundPowerUp: "power.wav",
}

// String returns the cue name used in logs
func (st SoundType) String() string {
	switch st {
	case SoundDeath:
		return "death"
	case SoundPoint:
		return "point"
	case SoundPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNoAudioBackend     = errors.New("no audio output available")
	ErrNoCaptureBackend   = errors.New("no capture device available")
	ErrCaptureClosed      = errors.New("capture stream closed")
	ErrUnsupportedAsset   = errors.New("unsupported sound asset format")
	ErrEngineAlreadyStart = errors.New("audio engine already running")
)
