package session

import (
	"sync"

	"click4news/types"
	"click4news/vote"
)

// SnapshotSource supplies the feature collection a new session loads
// once at creation. The cron-refreshed cache implements it.
type SnapshotSource interface {
	Snapshot() []types.Feature
}

// Manager hands each authenticated user their session, creating it on
// first sight. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	source   SnapshotSource
	notifier vote.Notifier
}

func NewManager(source SnapshotSource, notifier vote.Notifier) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		source:   source,
		notifier: notifier,
	}
}

// Get returns the user's session, loading a fresh snapshot for a user
// seen for the first time.
func (m *Manager) Get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := New(userID, m.source.Snapshot(), m.notifier)
	m.sessions[userID] = s
	return s
}

// Drop removes a user's session, typically on sign-out.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		s.Dismiss()
		delete(m.sessions, userID)
	}
}
