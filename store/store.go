package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/snakeflow/game"
)

const (
	SaveFile   = "save.json"
	RecordFile = "record.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Store persists the resumable checkpoint and the best record as JSON files in one directory
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates a store rooted at dir, the directory is created on first write
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user data directory
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "snakeflow"), nil
}

// Dir returns the storage directory
func (s *Store) Dir() string {
	return s.dir
}

// LoadSave returns the checkpoint, nil when none exists
func (s *Store) LoadSave() (*game.SaveData, error) {
	var d game.SaveData
	found, err := s.read(SaveFile, &d)
	if err != nil || !found {
		return nil, err
	}
	return &d, nil
}

// WriteSave replaces the checkpoint
func (s *Store) WriteSave(d game.SaveData) error {
	return s.write(SaveFile, d)
}

// ClearSave removes the checkpoint, a missing file is not an error
func (s *Store) ClearSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(filepath.Join(s.dir, SaveFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear save: %w", err)
	}
	return nil
}

// LoadRecord returns the stored record, the zero record when none exists
func (s *Store) LoadRecord() (game.Record, error) {
	var r game.Record
	_, err := s.read(RecordFile, &r)
	return r, err
}

// WriteRecord replaces the record
func (s *Store) WriteRecord(r game.Record) error {
	return s.write(RecordFile, r)
}

func (s *Store) read(name string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// write replaces name atomically: temp file in the same directory, then rename
func (s *Store) write(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
