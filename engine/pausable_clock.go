package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a real TimeProvider, excluding paused spans
// Power-up expiries and spawn accumulation read this clock so a pause neither consumes nor extends them
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	epoch  time.Time // real time at creation

	paused      bool
	pauseStart  time.Time     // real time the current pause began
	pausedTotal time.Duration // completed pauses since epoch
}

// NewPausableClock creates a running clock over source
// A nil source uses the monotonic system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		epoch:  source.Now(),
	}
}

// Now returns game time; frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.epoch.Add(pc.elapsedLocked())
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	ref := pc.source.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return ref.Sub(pc.epoch) - pc.pausedTotal
}

// RealTime returns the underlying source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement, no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips pause state, returns true if now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}
