package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/lixenwraith/noisy-bird/constant"
)

// PortAudioBackend captures from the default input device through PortAudio callbacks
type PortAudioBackend struct{}

// NewPortAudioBackend creates the PortAudio capture backend
func NewPortAudioBackend() *PortAudioBackend {
	return &PortAudioBackend{}
}

// Name implements CaptureBackend
func (b *PortAudioBackend) Name() string { return "portaudio" }

// Open implements CaptureBackend
// Each successful Open holds one Initialize reference, released by Close
func (b *PortAudioBackend) Open(cfg CaptureConfig, process func([]float32)) (CaptureStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	rate := cfg.SampleRate
	if rate <= 0 {
		rate = constant.CaptureFallbackRate
		if dev, err := portaudio.DefaultInputDevice(); err == nil && dev != nil && dev.DefaultSampleRate > 0 {
			rate = dev.DefaultSampleRate
		}
	}

	stream, err := portaudio.OpenDefaultStream(cfg.Channels, 0, rate, cfg.BlockSize, func(in []float32) {
		process(in)
	})
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("open default stream: %w", err)
	}

	return &portAudioStream{stream: stream, rate: rate}, nil
}

type portAudioStream struct {
	stream *portaudio.Stream
	rate   float64
}

func (s *portAudioStream) Start() error { return s.stream.Start() }

// Stop waits for pending buffers, so no callback runs after it returns
func (s *portAudioStream) Stop() error { return s.stream.Stop() }

func (s *portAudioStream) Close() error {
	err := s.stream.Close()
	if termErr := portaudio.Terminate(); err == nil {
		err = termErr
	}
	return err
}

func (s *portAudioStream) SampleRate() float64 { return s.rate }
