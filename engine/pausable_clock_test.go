package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClockAdvancesWithSource(t *testing.T) {
	src := NewMockTimeProvider(epoch)
	clock := NewPausableClock(src)

	src.Advance(2 * time.Second)
	assert.True(t, clock.Now().Equal(epoch.Add(2*time.Second)))
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	src := NewMockTimeProvider(epoch)
	clock := NewPausableClock(src)

	src.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	src.Advance(10 * time.Second)
	assert.True(t, clock.Now().Equal(frozen))

	clock.Resume()
	src.Advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, clock.Now().Sub(epoch), "paused span excluded")
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	src := NewMockTimeProvider(epoch)
	clock := NewPausableClock(src)

	clock.Resume()
	assert.False(t, clock.IsPaused())

	clock.Pause()
	src.Advance(time.Second)
	clock.Pause()
	src.Advance(time.Second)
	clock.Resume()

	assert.True(t, clock.Now().Equal(epoch), "second Pause must not restart the pause span")
}

func TestPausableClockToggle(t *testing.T) {
	src := NewMockTimeProvider(epoch)
	clock := NewPausableClock(src)

	assert.True(t, clock.Toggle())
	assert.True(t, clock.IsPaused())
	src.Advance(3 * time.Second)
	assert.False(t, clock.Toggle())
	assert.False(t, clock.IsPaused())

	src.Advance(time.Second)
	assert.Equal(t, time.Second, clock.Now().Sub(epoch))
}

func TestPausableClockRealTimeIgnoresPause(t *testing.T) {
	src := NewMockTimeProvider(epoch)
	clock := NewPausableClock(src)
	clock.Pause()
	src.Advance(time.Minute)
	assert.True(t, clock.RealTime().Equal(epoch.Add(time.Minute)))
}
