// Package session owns the authentication state of rollcall viewers.
// Every browser gets an in-memory session; logging in attaches a
// teacher identity and the credentials that proved it, logging out
// detaches both. Nothing is ever persisted.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/models"
)

// Session is one viewer's state. It starts anonymous; teacher and
// credentials are always set together and cleared together, so a
// session either has both (authenticated) or neither.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time

	mu      sync.RWMutex
	teacher *models.Teacher
	creds   *models.Credentials
}

// IsAuthenticated reports whether a teacher is logged in on this session.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teacher != nil
}

// Teacher returns the logged-in identity, if any.
func (s *Session) Teacher() (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.teacher == nil {
		return models.Teacher{}, false
	}
	return *s.teacher, true
}

// Credentials returns a copy of the session's credentials, if any.
// Callers capture the copy at request-construction time; a logout that
// lands afterwards does not affect requests already built from it.
func (s *Session) Credentials() (models.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return models.Credentials{}, false
	}
	return *s.creds, true
}

func (s *Session) authenticate(teacher models.Teacher, creds models.Credentials) {
	s.mu.Lock()
	s.teacher = &teacher
	s.creds = &creds
	s.mu.Unlock()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.teacher = nil
	s.creds = nil
	s.mu.Unlock()
}

// Store holds sessions in memory, keyed by random cookie IDs.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store with the given TTL and starts the
// expiry sweep.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	go s.cleanup()
	return s
}

// Create makes a new anonymous session.
func (s *Store) Create() (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get returns the session for id, or false if unknown or expired.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, false
	}
	return sess, true
}

// Delete removes the session for id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		s.mu.Lock()
		for id, sess := range s.sessions {
			if time.Now().After(sess.ExpiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
