package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/constant"
)

const bytesPerSample = 4

// PipeBackend captures by reading raw float32 samples from a recorder subprocess
type PipeBackend struct {
	Kind PipeKind
	Path string
	name string
	args func(rate string) []string
}

// Name implements CaptureBackend
func (b *PipeBackend) Name() string { return b.name }

// Open implements CaptureBackend; the recorder is not launched until Start
// Recorders expose no device default rate, so an unset rate records at CaptureFallbackRate
func (b *PipeBackend) Open(cfg CaptureConfig, process func([]float32)) (CaptureStream, error) {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = constant.CaptureFallbackRate
	}
	cmd := exec.Command(b.Path, b.args(formatRate(rate))...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	return &pipeStream{
		cmd:       cmd,
		stdout:    stdout,
		rate:      rate,
		blockSize: cfg.BlockSize,
		process:   process,
	}, nil
}

type pipeStream struct {
	cmd       *exec.Cmd
	stdout    io.ReadCloser
	rate      float64
	blockSize int
	process   func([]float32)

	once     sync.Once
	wg       sync.WaitGroup
	started  bool
	stopping atomic.Bool
	failed   atomic.Bool
}

func (s *pipeStream) Start() error {
	if err := s.cmd.Start(); err != nil {
		return err
	}
	s.started = true
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := readBlocks(s.stdout, s.blockSize, s.process)
		if s.stopping.Load() {
			return
		}
		s.failed.Store(true)
		log.Warn().Err(err).Str("recorder", s.cmd.Path).Msg("capture recorder exited")
	}()
	return nil
}

// Stop kills the recorder and waits for the reader goroutine to exit
func (s *pipeStream) Stop() error {
	var err error
	s.once.Do(func() {
		if !s.started {
			return
		}
		s.stopping.Store(true)
		if s.cmd.Process != nil {
			err = s.cmd.Process.Kill()
		}
		s.wg.Wait()
		_ = s.cmd.Wait()
	})
	return err
}

func (s *pipeStream) Close() error {
	return s.Stop()
}

func (s *pipeStream) SampleRate() float64 { return s.rate }

// Failed reports that the recorder exited on its own after Start
func (s *pipeStream) Failed() bool { return s.failed.Load() }

// readBlocks decodes fixed-size float32 LE blocks from r until EOF or error
// A trailing partial block is discarded
func readBlocks(r io.Reader, blockSize int, process func([]float32)) error {
	raw := make([]byte, blockSize*bytesPerSample)
	block := make([]float32, blockSize)
	for {
		if _, err := io.ReadFull(r, raw); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrCaptureClosed
			}
			return err
		}
		for i := range block {
			block[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*bytesPerSample:]))
		}
		process(block)
	}
}
