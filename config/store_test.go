package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMissingFilesUseDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, DefaultSettings(), s.Load())
	assert.Equal(t, 0, s.LoadHighscore())
}

func TestStoreSettingsRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "score")
	s := NewStore(dir)

	want := Settings{Volume: 0.25, Muted: true, Sensitivity: 2.2, MicThreshold: 0.12, ShowDebug: true}
	s.Save(want)
	assert.Equal(t, want, s.Load())

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mic_threshold": 0.12`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStoreCorruptSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{broken"), 0o644))
	assert.Equal(t, DefaultSettings(), NewStore(dir).Load())
}

func TestStoreHighscore(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	s.SaveHighscore(42)
	assert.Equal(t, 42, s.LoadHighscore())

	data, err := os.ReadFile(filepath.Join(dir, "highscore.save"))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))

	s.SaveHighscore(7)
	assert.Equal(t, 7, s.LoadHighscore(), "overwritten, not max-merged")
}

func TestStoreInvalidHighscore(t *testing.T) {
	for _, content := range []string{"", "abc", "-5", "12.5"} {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "highscore.save"), []byte(content), 0o644))
		assert.Equal(t, 0, NewStore(dir).LoadHighscore(), "content %q", content)
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highscore.save"), []byte(" 17\n"), 0o644))
	assert.Equal(t, 17, NewStore(dir).LoadHighscore())
}

func TestStoreSaveFailureIsSilent(t *testing.T) {
	// A regular file where the directory should be
	parent := t.TempDir()
	blocker := filepath.Join(parent, "score")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := NewStore(blocker)
	assert.NotPanics(t, func() {
		s.Save(DefaultSettings())
		s.SaveHighscore(3)
	})
	assert.Equal(t, 0, s.LoadHighscore())
}
