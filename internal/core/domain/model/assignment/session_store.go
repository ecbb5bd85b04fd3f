package assignment

import (
	"sync"
	"time"

	"warehouse/internal/core/domain/model/kernel"
)

// SessionStore keeps at most one PendingAssignment per operator.
//
// Starting a new session while one is already open replaces the old one: the
// most recent piece scan always wins. Sessions expire after the configured
// TTL; expiry is enforced lazily on Get and eagerly by SweepExpired, which a
// periodic job calls.
//
// The store is safe for concurrent use.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]PendingAssignment
}

// NewSessionStore creates an empty store. A non-positive ttl disables
// session expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]PendingAssignment),
	}
}

// Put opens or replaces the operator's session.
func (s *SessionStore) Put(pending PendingAssignment) error {
	if err := pending.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[pending.Operator().String()] = pending
	return nil
}

// Get returns the operator's open session, if any. An expired session is
// removed and reported as absent.
func (s *SessionStore) Get(operator kernel.UUID, now time.Time) (PendingAssignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.sessions[operator.String()]
	if !ok {
		return PendingAssignment{}, false
	}
	if pending.IsExpired(now, s.ttl) {
		delete(s.sessions, operator.String())
		return PendingAssignment{}, false
	}
	return pending, true
}

// Clear ends the operator's session. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(operator kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, operator.String())
}

// SweepExpired removes every expired session and returns the removed ones.
func (s *SessionStore) SweepExpired(now time.Time) []PendingAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []PendingAssignment
	for key, pending := range s.sessions {
		if pending.IsExpired(now, s.ttl) {
			expired = append(expired, pending)
			delete(s.sessions, key)
		}
	}
	return expired
}

// Len returns the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
