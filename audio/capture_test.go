package audio

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend delivers blocks from a goroutine until stopped
type fakeBackend struct {
	name    string
	openErr error
	opened  atomic.Int32
	last    *fakeStream
	blocks  [][]float32
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Open(cfg CaptureConfig, process func([]float32)) (CaptureStream, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}
	b.opened.Add(1)
	b.last = &fakeStream{process: process, blocks: b.blocks, stop: make(chan struct{})}
	return b.last, nil
}

type fakeStream struct {
	process func([]float32)
	blocks  [][]float32
	stop    chan struct{}
	wg      sync.WaitGroup
	stopped atomic.Int32
	closed  atomic.Int32
	calls   atomic.Int64
}

func (s *fakeStream) Start() error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for i := 0; ; i++ {
			select {
			case <-s.stop:
				return
			default:
			}
			if len(s.blocks) > 0 {
				s.process(s.blocks[i%len(s.blocks)])
				s.calls.Add(1)
			}
			time.Sleep(time.Millisecond)
		}
	}()
	return nil
}

func (s *fakeStream) Stop() error {
	if s.stopped.Add(1) == 1 {
		close(s.stop)
	}
	s.wg.Wait()
	return nil
}

func (s *fakeStream) Close() error {
	s.closed.Add(1)
	return nil
}

func (s *fakeStream) SampleRate() float64 { return 48000 }

func TestMicrophoneDegradedWhenNoBackendOpens(t *testing.T) {
	bad := &fakeBackend{name: "bad", openErr: errors.New("no device")}
	mic := NewMicrophone(DefaultCaptureConfig(), bad)

	err := mic.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCaptureBackend)
	assert.True(t, mic.Degraded())
	assert.False(t, mic.Running())
	assert.Equal(t, 0.0, mic.LatestVolume())

	// Stop on a never-started microphone is a no-op
	mic.Stop()
	mic.Stop()
	assert.Equal(t, 0.0, mic.LatestVolume())
}

func TestMicrophoneFallsThroughToNextBackend(t *testing.T) {
	bad := &fakeBackend{name: "bad", openErr: errors.New("busy")}
	good := &fakeBackend{name: "good", blocks: [][]float32{{0.5, -0.5, 0.5, -0.5}}}
	mic := NewMicrophone(DefaultCaptureConfig(), bad, good)

	require.NoError(t, mic.Start())
	defer mic.Stop()

	assert.False(t, mic.Degraded())
	assert.Equal(t, 48000.0, mic.SampleRate())
	require.Eventually(t, func() bool {
		return mic.LatestVolume() > 0.49
	}, time.Second, time.Millisecond)
	assert.InDelta(t, 0.5, mic.LatestVolume(), 1e-6)
}

func TestMicrophoneStartIsIdempotent(t *testing.T) {
	good := &fakeBackend{name: "good"}
	mic := NewMicrophone(DefaultCaptureConfig(), good)

	require.NoError(t, mic.Start())
	require.NoError(t, mic.Start())
	assert.Equal(t, int32(1), good.opened.Load())
	mic.Stop()
}

func TestMicrophoneStopQuiescesCallback(t *testing.T) {
	good := &fakeBackend{name: "good", blocks: [][]float32{{1, 1}, {0.2, 0.2}}}
	mic := NewMicrophone(DefaultCaptureConfig(), good)
	require.NoError(t, mic.Start())

	require.Eventually(t, func() bool { return good.last.calls.Load() > 5 }, time.Second, time.Millisecond)
	mic.Stop()

	calls := good.last.calls.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, calls, good.last.calls.Load(), "no callback after Stop returns")
	assert.Equal(t, int32(1), good.last.closed.Load())
	assert.Equal(t, 0.0, mic.LatestVolume())
	assert.False(t, mic.Running())

	mic.Stop()
	assert.Equal(t, int32(1), good.last.closed.Load())
}

func TestMicrophoneRestartAfterStop(t *testing.T) {
	good := &fakeBackend{name: "good", blocks: [][]float32{{0.3}}}
	mic := NewMicrophone(DefaultCaptureConfig(), good)

	for round := 0; round < 3; round++ {
		require.NoError(t, mic.Start())
		require.Eventually(t, func() bool { return mic.LatestVolume() > 0 }, time.Second, time.Millisecond)
		mic.Stop()
	}
	assert.Equal(t, int32(3), good.opened.Load())
}

// Concurrent reads while the callback writes; meaningful under -race
func TestMicrophoneConcurrentReads(t *testing.T) {
	good := &fakeBackend{name: "good", blocks: [][]float32{{0.1}, {0.9}}}
	mic := NewMicrophone(DefaultCaptureConfig(), good)
	require.NoError(t, mic.Start())
	defer mic.Stop()

	deadline := time.Now().Add(20 * time.Millisecond)
	for time.Now().Before(deadline) {
		v := mic.LatestVolume()
		assert.True(t, v == 0 || (v > 0.09 && v < 0.11) || (v > 0.89 && v < 0.91), "unexpected %v", v)
	}
}
