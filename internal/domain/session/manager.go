package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const tokenBytes = 32

// Manager owns every live session, keyed by the SHA-256 of its token.
// Raw tokens are only ever held by the client.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func NewManager(ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      log.With("component", "session_manager"),
	}
}

// Create starts an anonymous session and returns its token.
func (m *Manager) Create() (string, *Session, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	key := hashToken(token)

	s := newSession(m.now())

	m.mu.Lock()
	m.sessions[key] = s
	m.mu.Unlock()

	return token, s, nil
}

// Get returns the live session for token and marks it as used.
func (m *Manager) Get(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	key := hashToken(token)
	now := m.now()

	m.mu.Lock()
	s, ok := m.sessions[key]
	if ok && m.expired(s, now) {
		delete(m.sessions, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	s.touch(now)
	return s, nil
}

// End destroys the session. Unknown tokens are ignored.
func (m *Manager) End(token string) {
	m.mu.Lock()
	delete(m.sessions, hashToken(token))
	m.mu.Unlock()
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes idle sessions and returns how many were dropped.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for key, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, key)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug("expired sessions removed", "count", n)
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && s.idleSince(now) > m.ttl
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
