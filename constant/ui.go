package constant

// Settings ranges and steps
const (
	VolumeMin  = 0.0
	VolumeMax  = 1.0
	VolumeStep = 0.05

	SensitivityMin  = 0.1
	SensitivityMax  = 5.0
	SensitivityStep = 0.1

	ThresholdMin  = 0.01
	ThresholdMax  = 1.0
	ThresholdStep = 0.01
)

// Settings defaults
const (
	DefaultVolume       = 0.6
	DefaultMuted        = false
	DefaultSensitivity  = 0.6
	DefaultMicThreshold = 0.07
	DefaultShowDebug    = false
)
