package auth

import (
	"sync"

	"click4news/types"
)

// Session is the observable current-user slot. Auth-state notifications
// may arrive at any time and supersede whatever identity a component
// cached; components subscribe instead of polling.
type Session struct {
	mu        sync.Mutex
	user      *types.User
	observers []func(*types.User)
}

func NewSession() *Session {
	return &Session{}
}

// Current returns the signed-in user, or nil when signed out.
func (s *Session) Current() *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Subscribe registers an observer and immediately delivers the current
// state, matching the provider's subscription semantics.
func (s *Session) Subscribe(fn func(*types.User)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	user := s.user
	s.mu.Unlock()

	fn(user)
}

func (s *Session) set(user *types.User) {
	s.mu.Lock()
	s.user = user
	observers := make([]func(*types.User), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(user)
	}
}
