package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memorySession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type memoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memorySession
}

// NewMemoryStore creates an in-process session store. It is used in tests and
// as the fallback when no Redis URL is configured; sessions do not survive a
// restart and are not shared across instances.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *memoryStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := newToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *memoryStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return uuid.Nil, ErrNotFound
	}

	sess.expiresAt = time.Now().Add(s.ttl)
	s.sessions[token] = sess
	return sess.userID, nil
}

func (s *memoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
