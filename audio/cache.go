package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

// resampleQuality is the beep resampler quality for assets recorded at another rate
const resampleQuality = 4

// soundCache holds decoded cue buffers at the engine sample rate
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	dir    string
	synth  bool
	store  [soundTypeCount]*beep.Buffer
	ready  [soundTypeCount]bool
}

func newSoundCache(dir string, rate beep.SampleRate, synth bool) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		dir:    dir,
		synth:  synth,
	}
}

// get returns the cached buffer, loading on first use; nil if the cue is unavailable
func (c *soundCache) get(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready[st] {
		return c.store[st]
	}

	buf, err := c.loadFile(st)
	if err != nil {
		log.Debug().Err(err).Stringer("cue", st).Msg("sound asset unavailable")
		buf = nil
		if c.synth {
			buf = beep.NewBuffer(c.format)
			buf.Append(generateSound(st, int(c.format.SampleRate)).streamer())
		}
	}
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload resolves every cue so the first play does not decode on the frame thread
func (c *soundCache) preload() {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st)
	}
}

func (c *soundCache) loadFile(st SoundType) (*beep.Buffer, error) {
	path := filepath.Join(c.dir, soundFiles[st])
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAsset, path)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != c.format.SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, c.format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("stream %s: %w", path, err)
	}
	return buf, nil
}
