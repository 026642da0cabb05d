// Package store persists the reading history as a single JSON array,
// rewritten in full on every append. Data lives in ~/.weathermon/ by
// default.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luki/weathermon/internal/history"
	"github.com/luki/weathermon/internal/sensor"
)

// ErrCorrupt wraps decode failures of an existing history file. The file
// is left untouched while it cannot be read, so a hundred readings are
// never lost to a silent rewrite.
var ErrCorrupt = errors.New("history file is corrupt")

// Store reads and writes the bounded reading history at a fixed path.
type Store struct {
	path string
}

// Open creates a store for the given file path. The file itself is
// created on the first append.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the full history from disk. A missing file is an empty
// history; an unreadable or unparseable one is an error.
func (s *Store) Load() (*history.History, error) {
	h := history.New(history.Cap)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var readings []sensor.Reading
	if err := json.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	for _, r := range readings {
		h.Push(r)
	}
	return h, nil
}

// Append runs one read-modify-write cycle: load the current history,
// push the reading, and rewrite the file. A corrupt existing file aborts
// the append with the file untouched.
func (s *Store) Append(r sensor.Reading) error {
	h, err := s.Load()
	if err != nil {
		return err
	}
	h.Push(r)
	return s.save(h)
}

// save writes the history as an indented JSON array. The write goes to a
// temp file in the same directory and is renamed over the target, so the
// file is never left half written.
func (s *Store) save(h *history.History) error {
	data, err := json.MarshalIndent(h.Readings(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
