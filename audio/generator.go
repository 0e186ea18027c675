package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates a raw waveform at rate
func oscillator(waveType int, freq float64, samples, rate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(rate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine gliding linearly from f0 to f1
func sweep(f0, f1 float64, samples, rate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(samples)
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += (f0 + (f1-f0)*t) / float64(rate)
		phase -= math.Floor(phase)
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64, rate int) {
	total := len(buf)
	attackSamples := int(attackSec * float64(rate))
	releaseSamples := int(releaseSec * float64(rate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mix adds b scaled into a, extending a if needed
func mix(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concat(a, b floatBuffer) floatBuffer {
	out := make(floatBuffer, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// streamer returns a one-shot stereo streamer over b
func (b floatBuffer) streamer() beep.Streamer {
	return &floatStreamer{buf: b}
}

// floatStreamer plays a mono floatBuffer on both channels
type floatStreamer struct {
	buf floatBuffer
	pos int
}

func (s *floatStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := copyMono(samples, s.buf[s.pos:])
	s.pos += n
	return n, true
}

func (s *floatStreamer) Err() error { return nil }

func copyMono(dst [][2]float64, src floatBuffer) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}
