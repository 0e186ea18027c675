package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a lock-free float64 slot using bit conversion
// Zero value is ready to use (represents 0.0)
// Single-writer/single-reader handoff between the capture callback and the frame loop
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store writes val, replacing any previous value
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load returns the most recently stored value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}
