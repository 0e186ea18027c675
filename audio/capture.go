package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/constant"
	"github.com/lixenwraith/noisy-bird/status"
)

// CaptureConfig describes the requested input stream
type CaptureConfig struct {
	// SampleRate in Hz, 0 lets the backend pick the device default
	SampleRate float64
	Channels   int
	BlockSize  int
}

// DefaultCaptureConfig returns mono 1024-frame blocks at the device default rate
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		Channels:  constant.CaptureChannels,
		BlockSize: constant.CaptureBlockSize,
	}
}

// CaptureStream is an opened input stream delivering blocks to a callback
type CaptureStream interface {
	Start() error
	// Stop returns once no further callback invocation can occur
	Stop() error
	Close() error
	SampleRate() float64
}

// streamFailer is implemented by streams whose source can die after Start
type streamFailer interface {
	Failed() bool
}

// CaptureBackend opens capture streams; process runs on a backend-owned goroutine or thread
type CaptureBackend interface {
	Name() string
	Open(cfg CaptureConfig, process func(block []float32)) (CaptureStream, error)
}

// Microphone owns one capture pipeline and exposes the latest block RMS
// Start and Stop are called from the frame loop; the capture callback only writes the latest slot
type Microphone struct {
	config   CaptureConfig
	backends []CaptureBackend

	mu      sync.Mutex
	stream  CaptureStream
	backend string

	latest   status.AtomicFloat
	degraded bool
}

// NewMicrophone creates a microphone trying backends in order
// With no backends given, PortAudio is tried first, then a detected command-line recorder
func NewMicrophone(cfg CaptureConfig, backends ...CaptureBackend) *Microphone {
	if cfg.Channels <= 0 {
		cfg.Channels = constant.CaptureChannels
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = constant.CaptureBlockSize
	}
	if len(backends) == 0 {
		backends = []CaptureBackend{NewPortAudioBackend()}
		if pipe, err := DetectCaptureBackend(); err == nil {
			backends = append(backends, pipe)
		}
	}
	return &Microphone{
		config:   cfg,
		backends: backends,
	}
}

// Start opens the first working backend
// On failure the microphone is degraded: LatestVolume stays 0 until a later Start succeeds
// The returned error is informational; callers continue the round
func (m *Microphone) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stream != nil {
		return nil
	}
	m.latest.Store(0)

	var errs []error
	for _, b := range m.backends {
		stream, err := b.Open(m.config, m.process)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.Name(), err))
			continue
		}
		if err := stream.Start(); err != nil {
			_ = stream.Close()
			errs = append(errs, fmt.Errorf("%s start: %w", b.Name(), err))
			continue
		}
		m.stream = stream
		m.backend = b.Name()
		m.degraded = false
		log.Info().Str("backend", b.Name()).Float64("rate", stream.SampleRate()).Msg("microphone started")
		return nil
	}

	m.degraded = true
	if len(errs) == 0 {
		errs = append(errs, errors.New("no capture backends configured"))
	}
	err := fmt.Errorf("%w: %w", ErrNoCaptureBackend, errors.Join(errs...))
	log.Warn().Err(err).Msg("microphone unavailable, continuing with silent input")
	return err
}

// Stop releases the device; blocks until the capture callback is quiesced
// Safe to call when never started or already stopped; errors are logged and swallowed
func (m *Microphone) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stream == nil {
		return
	}
	if err := m.stream.Stop(); err != nil {
		log.Debug().Err(err).Str("backend", m.backend).Msg("capture stop")
	}
	if err := m.stream.Close(); err != nil {
		log.Debug().Err(err).Str("backend", m.backend).Msg("capture close")
	}
	m.stream = nil
	m.backend = ""
	m.latest.Store(0)
	log.Info().Msg("microphone stopped")
}

// LatestVolume returns the most recent block RMS, possibly one or more blocks stale
func (m *Microphone) LatestVolume() float64 {
	return m.latest.Load()
}

// Running reports whether a capture stream is open
func (m *Microphone) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stream != nil
}

// Degraded reports whether the last Start found no usable backend or the open stream has since died
func (m *Microphone) Degraded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.degraded {
		return true
	}
	f, ok := m.stream.(streamFailer)
	return ok && f.Failed()
}

// SampleRate returns the open stream rate, 0 when stopped
func (m *Microphone) SampleRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream == nil {
		return 0
	}
	return m.stream.SampleRate()
}

// process is the capture callback: latest-value-wins single slot
func (m *Microphone) process(block []float32) {
	m.latest.Store(RMS(block))
}
