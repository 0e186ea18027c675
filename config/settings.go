package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/vmath"
)

// ErrInvalidSettings marks a settings document that is not a JSON object
var ErrInvalidSettings = errors.New("settings is not a JSON object")

// Settings is the persisted player configuration
type Settings struct {
	Volume       float64 `json:"volume"`
	Muted        bool    `json:"muted"`
	Sensitivity  float64 `json:"sensitivity"`
	MicThreshold float64 `json:"mic_threshold"`
	ShowDebug    bool    `json:"show_debug"`
}

// DefaultSettings returns the compiled-in defaults
func DefaultSettings() Settings {
	return Settings{
		Volume:       constant.DefaultVolume,
		Muted:        constant.DefaultMuted,
		Sensitivity:  constant.DefaultSensitivity,
		MicThreshold: constant.DefaultMicThreshold,
		ShowDebug:    constant.DefaultShowDebug,
	}
}

// Clamp bounds every numeric field to its settings-screen range
func (s *Settings) Clamp() {
	s.Volume = vmath.Clamp(s.Volume, constant.VolumeMin, constant.VolumeMax)
	s.Sensitivity = vmath.Clamp(s.Sensitivity, constant.SensitivityMin, constant.SensitivityMax)
	s.MicThreshold = vmath.Clamp(s.MicThreshold, constant.ThresholdMin, constant.ThresholdMax)
}

// ParseSettings decodes a settings document key by key
// A missing or mistyped key keeps its default; the result is always usable, the error is informational
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if raw == nil {
		return s, ErrInvalidSettings
	}

	errs := []error{
		decodeKey(raw, "volume", &s.Volume),
		decodeKey(raw, "muted", &s.Muted),
		decodeKey(raw, "sensitivity", &s.Sensitivity),
		decodeKey(raw, "mic_threshold", &s.MicThreshold),
		decodeKey(raw, "show_debug", &s.ShowDebug),
	}

	s.Clamp()
	return s, errors.Join(errs...)
}

// decodeKey overwrites dst only when key is present and decodes cleanly
func decodeKey[T any](raw map[string]json.RawMessage, key string, dst *T) error {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}
