// Package memstore provides an in-memory, mutex-guarded implementation of
// the store capability. It is the volatile mode of the server and the
// store used by tests.
package memstore

import (
	"context"
	"sync"

	"github.com/aigenie/genie-server/store"
)

var _ store.Store = (*MemStore)(nil)

type MemStore struct {
	values map[string]string
	lock   sync.RWMutex
}

func New() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemStore) Remove(_ context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.values, key)
	return nil
}

// Len reports the number of stored keys. Test helper.
func (m *MemStore) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.values)
}
