package services

import (
	"context"
	"sync"

	"tripconcierge/internal/repositories"
)

const DefaultSessionID = "default"

// SessionManager hands out one PlanningSession per session id. Sessions
// share the backing TripStore, so history written by one is visible to a
// session created later.
type SessionManager struct {
	mu       sync.Mutex
	store    repositories.TripStore
	sessions map[string]*PlanningSession
}

func NewSessionManager(store repositories.TripStore) *SessionManager {
	return &SessionManager{
		store:    store,
		sessions: make(map[string]*PlanningSession),
	}
}

// GetOrCreate returns the session for id, creating and loading it on first
// use. An empty id maps to the default session.
func (m *SessionManager) GetOrCreate(ctx context.Context, id string) (*PlanningSession, error) {
	if id == "" {
		id = DefaultSessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[id]; ok {
		return session, nil
	}
	session, err := NewPlanningSession(ctx, m.store)
	if err != nil {
		return nil, err
	}
	m.sessions[id] = session
	return session, nil
}
