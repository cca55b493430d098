package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianshen/buildgen/internal/wizard"
)

// Session is one client's wizard. Handlers must hold mu while touching state.
type Session struct {
	ID string

	mu      sync.Mutex
	state   *wizard.State
	touched time.Time
}

// SessionStore keeps sessions in memory and forgets the ones idle for
// longer than ttl.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an empty store. A non-positive ttl disables pruning.
func NewSessionStore(ttl time.Duration, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Create starts a new session on the first wizard step.
func (s *SessionStore) Create() *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		state:   wizard.New(),
		touched: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with id and marks it as used.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	sess.mu.Lock()
	sess.touched = s.now()
	sess.mu.Unlock()
	return sess, true
}

// Delete removes the session with id, reporting whether it existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Prune drops sessions idle for longer than the ttl and returns how many
// were removed.
func (s *SessionStore) Prune() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		stale := sess.touched.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
