// pkg/memcache/token_cache.go
package memcache

import (
	"sync"
	"time"
)

type TokenStore interface {
	Set(key string, token string, ttl time.Duration)

	// Get returns the token for key if it has not expired.
	Get(key string) (string, bool)

	Delete(key string)
}

type entry struct {
	token     string
	expiresAt time.Time
}

type TokenCache struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewTokenCache() *TokenCache {
	return &TokenCache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *TokenCache) Set(key string, token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		token:     token,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *TokenCache) Get(key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !s.now().Before(e.expiresAt) {
		s.Delete(key) // cleanup expired
		return "", false
	}
	return e.token, true
}

func (s *TokenCache) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
