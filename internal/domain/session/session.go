// Package session keeps the per-browser state of the console: who is logged
// in and the unsaved editor buffer. Sessions live in memory only.
package session

import (
	"errors"
	"sync"
	"time"

	"legaldesk/internal/domain/draft"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

var (
	ErrNotAuthenticated = errors.New("session is not authenticated")
	ErrNotFound         = errors.New("session not found")
)

// Identity is the authenticated advocate.
type Identity struct {
	Username     string `json:"username"`
	EnrollmentID string `json:"enrollment_id"`
}

// Buffer is the unsaved editor text. It is never persisted implicitly.
type Buffer struct {
	Category draft.Category `json:"category"`
	DocType  string         `json:"doc_type"`
	Content  string         `json:"content"`
}

// Session is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	state     State
	identity  Identity
	buffer    Buffer
	createdAt time.Time
	lastSeen  time.Time
}

// View is an immutable copy of a session.
type View struct {
	State     State
	Identity  Identity
	Buffer    Buffer
	CreatedAt time.Time
	LastSeen  time.Time
}

func newSession(now time.Time) *Session {
	return &Session{
		state:     Anonymous,
		buffer:    emptyBuffer(),
		createdAt: now,
		lastSeen:  now,
	}
}

func emptyBuffer() Buffer {
	return Buffer{Category: draft.Civil, DocType: draft.DefaultDocType(draft.Civil)}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		State:     s.state,
		Identity:  s.identity,
		Buffer:    s.buffer,
		CreatedAt: s.createdAt,
		LastSeen:  s.lastSeen,
	}
}

// Identity returns the logged in advocate or ErrNotAuthenticated.
func (s *Session) Identity() (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticated {
		return Identity{}, ErrNotAuthenticated
	}
	return s.identity, nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// withAuth runs fn under the session lock if the session is authenticated.
func (s *Session) withAuth(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Authenticated {
		return ErrNotAuthenticated
	}
	fn()
	return nil
}
