package splash

import "sync"

// SessionStore is a string map that lives as long as one session.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemorySession keeps values for the life of the process.
type MemorySession struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemorySession() *MemorySession {
	return &MemorySession{values: make(map[string]string)}
}

func (m *MemorySession) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemorySession) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
