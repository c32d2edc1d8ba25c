package repository

import (
	"sync"

	"negotiation-agent/domain"
)

// MemorySessionStore is an in-memory SessionRepository for development and
// tests.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]domain.NegotiationSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		data: make(map[string]domain.NegotiationSession),
	}
}

func (m *MemorySessionStore) Get(id string) (domain.NegotiationSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.data[id]
	return session, ok
}

func (m *MemorySessionStore) Save(id string, session domain.NegotiationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = session
	return nil
}
