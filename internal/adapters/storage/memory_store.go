package storage

import (
	"context"
	"sync"

	"github.com/tomate-timer/tomate/internal/ports"
)

// MemoryStore is a KeyValueStore that lives only as long as the process.
// Used by --ephemeral runs and UI tests.
type MemoryStore struct {
	data map[string]string
	mu   sync.RWMutex
}

var _ ports.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements KeyValueStore.Get
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KeyValueStore.Set
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements KeyValueStore.Delete
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
