// Package session keeps several games in one process. Each game sits behind
// its own lock; the registry itself has a separate lock.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mway1/atomic"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Manager is a registry of sessions keyed by ID. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// NewGame registers a new game built with the given options.
func (m *Manager) NewGame(options ...func(*atomic.Game)) *Session {
	return m.Add(atomic.NewGame(options...))
}

// Add registers g under a fresh ID. The caller must not use g afterwards
// except through the returned session.
func (m *Manager) Add(g *atomic.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given ID or ErrNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session with the given ID or returns ErrNotFound.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
