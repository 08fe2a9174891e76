package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

// Manager holds each visitor's working dataset in memory. Nothing is
// persisted: a session's series is gone when the session is pruned or
// the process exits.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*state
	ttl      time.Duration
}

type state struct {
	series   model.Series
	lastSeen time.Time
}

// NewManager creates a Manager whose sessions expire after ttl of
// inactivity.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*state),
		ttl:      ttl,
	}
}

// NewID issues a fresh session identifier.
func (m *Manager) NewID() string { return uuid.NewString() }

// Get returns a copy of the session's series, if it has one.
func (m *Manager) Get(id string) (model.Series, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok || st.series == nil {
		return nil, false
	}
	st.lastSeen = time.Now()
	return st.series.Clone(), true
}

// Put stores the session's series.
func (m *Manager) Put(id string, s model.Series) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &state{series: s.Clone(), lastSeen: time.Now()}
}

// Clear drops the session's series, leaving the session unloaded.
func (m *Manager) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Prune removes sessions idle longer than the TTL and returns how many
// were dropped.
func (m *Manager) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-m.ttl)
	n := 0
	for id, st := range m.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
