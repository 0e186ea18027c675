package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	settingsFileName  = "settings.json"
	highscoreFileName = "highscore.save"
)

// Store persists settings and the highscore under one directory
// Every operation fails silently: loads fall back to defaults, saves log and continue
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir; the directory is created on first save
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage directory
func (s *Store) Dir() string { return s.dir }

// Load reads settings, falling back per key to defaults
func (s *Store) Load() Settings {
	data, err := os.ReadFile(filepath.Join(s.dir, settingsFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("settings unreadable, using defaults")
		}
		return DefaultSettings()
	}
	settings, err := ParseSettings(data)
	if err != nil {
		log.Warn().Err(err).Msg("settings partially invalid, defaults applied")
	}
	return settings
}

// Save writes settings as JSON
func (s *Store) Save(settings Settings) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("settings encode failed")
		return
	}
	if err := s.write(settingsFileName, data); err != nil {
		log.Warn().Err(err).Msg("settings save failed")
	}
}

// LoadHighscore reads the plain-integer highscore; unreadable or negative values read as 0
func (s *Store) LoadHighscore() int {
	data, err := os.ReadFile(filepath.Join(s.dir, highscoreFileName))
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		log.Warn().Str("content", string(data)).Msg("highscore invalid, reset to 0")
		return 0
	}
	return v
}

// SaveHighscore overwrites the stored highscore
func (s *Store) SaveHighscore(score int) {
	if score < 0 {
		score = 0
	}
	if err := s.write(highscoreFileName, []byte(strconv.Itoa(score))); err != nil {
		log.Warn().Err(err).Int("score", score).Msg("highscore save failed")
	}
}

// write replaces name atomically via a temp file in the same directory
func (s *Store) write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
