// ABOUTME: JSON-file Store backend with atomic temp-file-and-rename writes.
// ABOUTME: Used where Charm KV is unavailable and by tests.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the bundle as a single pretty-printed JSON file.
type FileStore struct {
	path string
}

// OpenFile creates a FileStore at the given path, creating the parent
// directory if needed.
func OpenFile(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the bundle file. A missing file or unreadable payload
// degrades to the default bundle.
func (s *FileStore) Load() (*Bundle, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewBundle(), nil
	}
	return decodeBundle(data), nil
}

// Save writes the bundle atomically: a rename either fully replaces the
// previous file or leaves it untouched.
func (s *FileStore) Save(b *Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace bundle: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error { return nil }
