// Package session keeps per-browser state on the server: the bearer
// token for the backend, the display user decoded from it, and the
// in-progress reservation draft. Sessions live in memory behind a
// cookie and expire on a sliding TTL.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/wizard"
)

// CookieName is the browser cookie holding the session id.
const CookieName = "teahouse_session"

type AuthState int

const (
	// StateUnknown means the stored token has not been checked yet.
	StateUnknown AuthState = iota
	StateAuthenticated
	StateUnauthenticated
)

type Session struct {
	ID        string
	State     AuthState
	Token     string
	User      models.SessionUser
	Draft     *wizard.Draft
	ExpiresAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create makes a fresh anonymous session.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		State:     StateUnknown,
		Draft:     wizard.NewDraft(),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id and slides its expiry forward.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	now := time.Now()
	if now.After(sess.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}

	s.mu.Lock()
	sess.ExpiresAt = now.Add(s.ttl)
	s.mu.Unlock()

	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Resolve settles an unknown auth state by decoding the stored token.
// decode is not a verification step; it only recovers the display user.
func (s *Store) Resolve(sess *Session, decode func(token string) (models.SessionUser, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.State != StateUnknown {
		return
	}
	if sess.Token == "" {
		sess.State = StateUnauthenticated
		return
	}

	user, err := decode(sess.Token)
	if err != nil {
		sess.Token = ""
		sess.State = StateUnauthenticated
		return
	}
	sess.User = user
	sess.State = StateAuthenticated
}

// Login stores the token and user after a successful credential exchange.
func (s *Store) Login(sess *Session, token string, user models.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Token = token
	sess.User = user
	sess.State = StateAuthenticated
}

// Logout clears the token and user.
func (s *Store) Logout(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Token = ""
	sess.User = models.SessionUser{}
	sess.State = StateUnauthenticated
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanupExpired drops every expired session and reports how many went.
func (s *Store) CleanupExpired() int {
	now := time.Now()
	count := 0

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			count++
		}
	}
	s.mu.Unlock()

	return count
}

// StartCleanup sweeps expired sessions on interval until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.CleanupExpired()
			}
		}
	}()
}
