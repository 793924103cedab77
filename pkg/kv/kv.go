// Package kv provides the string key-value medium backing per-user poll and
// notification records. Backends: in-memory (tests, dev fallback), Valkey and
// Postgres.
package kv

import (
	"context"
	"sync"
)

// Store is the persistence contract the poll subsystem relies on. Absent keys
// return ok=false, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, val string) error
	Delete(ctx context.Context, key string) error
}

// PrefixDeleter is implemented by backends that can sweep a key namespace,
// used by the Monday cleanup job.
type PrefixDeleter interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory { return &Memory{data: make(map[string]string)} }

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	v, ok := m.data[key]
	m.mu.RUnlock()
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, val string) error {
	m.mu.Lock()
	m.data[key] = val
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	for k := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.data, k)
		}
	}
	m.mu.Unlock()
	return nil
}
