package audio

// VolumeSmoother is a trailing moving average over the most recent raw volume samples
// Not safe for concurrent use; the frame loop is its only caller
type VolumeSmoother struct {
	ring  []float64
	next  int
	count int
}

// NewVolumeSmoother creates a smoother holding up to capacity samples, minimum 1
func NewVolumeSmoother(capacity int) *VolumeSmoother {
	if capacity < 1 {
		capacity = 1
	}
	return &VolumeSmoother{ring: make([]float64, capacity)}
}

// Add appends a sample, evicting the oldest once full
func (s *VolumeSmoother) Add(sample float64) {
	s.ring[s.next] = sample
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
}

// Value returns the mean of held samples, 0 when empty
func (s *VolumeSmoother) Value() float64 {
	if s.count == 0 {
		return 0
	}
	// Summed fresh each call; the window is tiny and a running sum would drift
	var sum float64
	for i := 0; i < s.count; i++ {
		sum += s.ring[i]
	}
	return sum / float64(s.count)
}

// Len returns the number of held samples
func (s *VolumeSmoother) Len() int { return s.count }

// Capacity returns the window size
func (s *VolumeSmoother) Capacity() int { return len(s.ring) }

// Reset drops all samples
func (s *VolumeSmoother) Reset() {
	s.next = 0
	s.count = 0
}
