package app

import "time"

// fpsCounter measures frames per real second over one-second windows
type fpsCounter struct {
	windowStart time.Time
	frames      int
	last        float64
}

func (f *fpsCounter) reset(now time.Time) {
	f.windowStart = now
	f.frames = 0
	f.last = 0
}

func (f *fpsCounter) tick(now time.Time) {
	f.frames++
	if elapsed := now.Sub(f.windowStart); elapsed >= time.Second {
		f.last = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.windowStart = now
	}
}

func (f *fpsCounter) rate() float64 { return f.last }
