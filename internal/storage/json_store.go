package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/state"
)

type fileStore struct {
	Version int `json:"version"`
	state.Snapshot
}

// JSONStore keeps the whole state in a single JSON file. Every Save
// rewrites the file; writes go through a temp file plus rename so a
// crash mid-write never leaves a truncated store behind.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(fileStore{Version: 1})
}

func (s *JSONStore) Load() (state.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state.Snapshot{}, fmt.Errorf("storage not initialized, run 'lifelog init' first")
		}
		return state.Snapshot{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var fs fileStore
	if err := json.Unmarshal(data, &fs); err != nil {
		return state.Snapshot{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	return fs.Snapshot, nil
}

func (s *JSONStore) Save(snap state.Snapshot) error {
	return s.write(fileStore{Version: 1, Snapshot: snap})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write(fs fileStore) error {
	data, err := json.MarshalIndent(fs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Unique temp name so a concurrent stray process can't collide on
	// the intermediate file.
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString()[:8])
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
