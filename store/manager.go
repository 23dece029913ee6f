package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Manager owns every live storefront session. It is constructed once in
// main and handed to the session middleware, so no package holds global
// mutable state.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	storage  SessionStorage
}

// sessionEntry pairs a session with its last-access time so idle
// sessions can be swept. lastSeen is touched on every request under the
// read lock, hence the atomic.
type sessionEntry struct {
	sess     *Session
	lastSeen atomic.Int64 // unix nanos
}

func NewManager(storage SessionStorage) *Manager {
	return &Manager{
		sessions: make(map[string]*sessionEntry),
		storage:  storage,
	}
}

// Get returns the session for the given ID, creating and hydrating it
// on first sight. Creation is the only point where persisted auth data
// is read.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	now := time.Now().UnixNano()

	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		entry.lastSeen.Store(now)
		return entry.sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// re-check under the write lock
	if entry, ok := m.sessions[id]; ok {
		entry.lastSeen.Store(now)
		return entry.sess
	}
	entry = &sessionEntry{sess: newSession(ctx, id, m.storage)}
	entry.lastSeen.Store(now)
	m.sessions[id] = entry
	return entry.sess
}

// Drop discards a session's in-memory state. Persisted auth data is the
// storage's concern, not the manager's.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Sweep drops every session idle longer than maxIdle and reports how
// many were removed. Without it the map grows one entry per cookie
// value forever, long after the cookie and the Redis keys have expired.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle).UnixNano()

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, entry := range m.sessions {
		if entry.lastSeen.Load() < cutoff {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
