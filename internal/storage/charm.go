// ABOUTME: Charm KV backend storing the bundle under one fixed key.
// ABOUTME: Badger-backed local store with automatic cloud sync after writes.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "vidafit"
	charmHost   = "charm.2389.dev"
)

var (
	globalCharm *CharmStore
	charmOnce   sync.Once
	charmErr    error
)

// CharmStore persists the bundle in Charm KV. Writes sync to Charm Cloud
// when the device is linked; otherwise the badger store stays local-only.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.Mutex
}

// OpenCharm opens the shared Charm KV store.
// Thread-safe; can be called multiple times.
func OpenCharm() (*CharmStore, error) {
	charmOnce.Do(func() {
		// Set server before opening KV
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			charmErr = err
			return
		}

		db, err := kv.OpenWithDefaultsFallback(charmDBName)
		if err != nil {
			charmErr = err
			return
		}

		globalCharm = &CharmStore{kv: db, autoSync: true}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalCharm, charmErr
}

// Load reads the bundle from the fixed key. A missing key or unreadable
// payload degrades to the default bundle.
func (s *CharmStore) Load() (*Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get([]byte(BundleKey))
	if err != nil || len(data) == 0 {
		return NewBundle(), nil
	}
	return decodeBundle(data), nil
}

// Save writes the bundle under the fixed key and syncs if enabled. A later
// Save fully replaces the previous payload; the single in-process writer
// guarantees ordering.
func (s *CharmStore) Save(b *Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}
	if err := s.kv.Set([]byte(BundleKey), data); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
	return nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *CharmStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return kv.Reset(charmDBName)
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
