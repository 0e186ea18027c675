package constant

import "time"

// Capture
const (
	// CaptureFallbackRate is used when the input device reports no default rate
	CaptureFallbackRate = 44100

	CaptureChannels  = 1
	CaptureBlockSize = 1024

	// SmoothingWindow is the trailing sample count averaged for the flap trigger
	SmoothingWindow = 6
)

// Playback
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Death cue
const (
	DeathSoundDuration = 400 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
)

// Point cue
const (
	PointNote1Duration = 80 * time.Millisecond
	PointNote2Duration = 200 * time.Millisecond
	PointSoundAttack   = 5 * time.Millisecond
	PointNote1Release  = 40 * time.Millisecond
	PointNote2Release  = 150 * time.Millisecond
)

// Power-up cue
const (
	PowerUpSoundDuration           = 500 * time.Millisecond
	PowerUpSoundAttack             = 5 * time.Millisecond
	PowerUpSoundFundamentalRelease = 450 * time.Millisecond
	PowerUpSoundOvertoneRelease    = 200 * time.Millisecond
)
