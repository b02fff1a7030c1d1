package mem

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	token     string
	expiresAt time.Time
}

// RefreshTokens keeps one refresh token per key in process memory.
type RefreshTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewRefreshTokens() *RefreshTokens {
	return &RefreshTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *RefreshTokens) Save(_ context.Context, key, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		token:     token,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns "" when nothing is stored or the entry expired.
func (s *RefreshTokens) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return "", nil
	}
	return e.token, nil
}

func (s *RefreshTokens) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
