/*
Package prefs provides the preference store used for personalization:
recently-used and favorited tool ids persisted as JSON strings under fixed
keys.

The store is a small key-value contract with two implementations: an
in-memory map for tests and non-interactive hosts, and a SQLite-backed store
(modernc.org/sqlite, pure Go) that degrades gracefully when the database is
unavailable. Hosts pick the implementation explicitly; nothing is detected
from the environment.
*/
package prefs

import "sync"

// KV is the minimal persistence contract the engine depends on. Values are
// opaque strings (the engine stores JSON arrays).
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryKV is a map-backed KV for tests and hosts without persistence.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
