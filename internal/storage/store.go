// ABOUTME: Store interface for bundle persistence plus the in-memory backend.
// ABOUTME: Load never fails startup; missing or corrupt data degrades to defaults.
package storage

import "encoding/json"

// BundleKey is the fixed key the whole bundle is stored under.
const BundleKey = "bundle:v1"

// Store persists the full state bundle. Implementations must make Load
// total: a missing or malformed payload yields NewBundle(), never an error
// that would abort startup. Save replaces the previous payload atomically.
type Store interface {
	Load() (*Bundle, error)
	Save(b *Bundle) error
	Close() error
}

// decodeBundle parses a persisted payload, falling back to the default
// bundle when the payload is unreadable.
func decodeBundle(data []byte) *Bundle {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return NewBundle()
	}
	b.normalize()
	return &b
}

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	data []byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the last saved bundle, or the default bundle.
func (m *Memory) Load() (*Bundle, error) {
	if m.data == nil {
		return NewBundle(), nil
	}
	return decodeBundle(m.data), nil
}

// Save serializes and keeps the bundle in memory.
func (m *Memory) Save(b *Bundle) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
