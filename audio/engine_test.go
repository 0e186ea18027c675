package audio

import (
	"errors"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	mu      sync.Mutex
	initErr error
	played  []beep.Streamer
	closed  int
}

func (d *fakeDevice) Init(beep.SampleRate, int) error { return d.initErr }

func (d *fakeDevice) Play(s beep.Streamer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.played = append(d.played, s)
}

func (d *fakeDevice) Close() { d.closed++ }

func testConfig(t *testing.T) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.SoundDir = t.TempDir() // empty: every cue synthesized
	return cfg
}

func TestAudioEnginePlaysSynthesizedCues(t *testing.T) {
	dev := &fakeDevice{}
	ae := newAudioEngine(testConfig(t), dev)
	require.NoError(t, ae.Start())
	defer ae.Stop()

	for _, st := range []SoundType{SoundDeath, SoundPoint, SoundPowerUp} {
		assert.True(t, ae.Play(st), st.String())
	}
	played, skipped := ae.Stats()
	assert.Equal(t, uint64(3), played)
	assert.Equal(t, uint64(0), skipped)
	assert.Len(t, dev.played, 3)
}

func TestAudioEngineSkipsMissingAssetWithoutSynthesis(t *testing.T) {
	cfg := testConfig(t)
	cfg.Synthesize = false
	ae := newAudioEngine(cfg, &fakeDevice{})
	require.NoError(t, ae.Start())

	assert.False(t, ae.Play(SoundPoint))
	_, skipped := ae.Stats()
	assert.Equal(t, uint64(1), skipped)
}

func TestAudioEngineMute(t *testing.T) {
	dev := &fakeDevice{}
	ae := newAudioEngine(testConfig(t), dev)
	require.NoError(t, ae.Start())

	ae.SetMuted(true)
	assert.False(t, ae.Play(SoundDeath))
	assert.True(t, ae.IsMuted())

	ae.SetMuted(false)
	assert.False(t, ae.IsMuted())
	assert.True(t, ae.Play(SoundDeath))
	assert.Len(t, dev.played, 1)
}

func TestAudioEngineZeroVolumeSkips(t *testing.T) {
	ae := newAudioEngine(testConfig(t), &fakeDevice{})
	require.NoError(t, ae.Start())
	ae.SetVolume(-1)
	assert.Equal(t, 0.0, ae.Volume())
	assert.False(t, ae.Play(SoundPoint))
	ae.SetVolume(7)
	assert.Equal(t, 1.0, ae.Volume())
}

func TestAudioEngineSilentModeOnDeviceFailure(t *testing.T) {
	dev := &fakeDevice{initErr: errors.New("no output")}
	ae := newAudioEngine(testConfig(t), dev)

	require.NoError(t, ae.Start(), "device failure is not an error")
	assert.True(t, ae.IsSilent())
	assert.False(t, ae.Play(SoundDeath))

	ae.Stop()
	assert.Equal(t, 0, dev.closed, "silent engine never opened the device")
}

func TestAudioEngineStartStopLifecycle(t *testing.T) {
	dev := &fakeDevice{}
	ae := newAudioEngine(testConfig(t), dev)

	assert.False(t, ae.Play(SoundPoint), "not running")
	require.NoError(t, ae.Start())
	assert.ErrorIs(t, ae.Start(), ErrEngineAlreadyStart)

	ae.Stop()
	ae.Stop()
	assert.Equal(t, 1, dev.closed)
}

func TestGeneratedCuesAreBounded(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := generateSound(st, 44100)
		require.NotEmpty(t, buf, st.String())
		for _, v := range buf {
			require.LessOrEqual(t, v, 1.0001)
			require.GreaterOrEqual(t, v, -1.0001)
		}
	}
	assert.Nil(t, generateSound(soundTypeCount, 44100))
}
