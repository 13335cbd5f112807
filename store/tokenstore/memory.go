package tokenstore

import (
	"context"
	"sync"
)

// Memory is a volatile in-process store, used in tests and as the
// fallback when no durable backend is configured.
type Memory struct {
	mu    sync.Mutex
	token string
	has   bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return "", nil
	}
	return m.token, nil
}

func (m *Memory) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.has = true
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.has = false
	return nil
}

func (m *Memory) Close() error { return nil }
