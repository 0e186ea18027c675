package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the game loop and capture pipeline
const (
	KeyMicRaw      = "mic.raw"
	KeyMicSmoothed = "mic.smoothed"
	KeyMicRate     = "mic.rate"
	KeyFPS         = "frame.fps"
	KeyObstacles   = "game.obstacles"
	KeyPowerUps    = "game.powerups"
	KeyCuesPlayed  = "audio.played"
	KeyCuesSkipped = "audio.skipped"
	KeyMicDegraded = "mic.degraded"
	KeyAudioSilent = "audio.silent"
)

// Registry is the debug metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key=value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	return lines
}
