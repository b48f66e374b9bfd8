package auth

import (
	"sync"
	"time"
)

// TokenRevocationStore tracks logged-out tokens by JTI until their natural
// expiry. Thread-safe for concurrent access.
type TokenRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // JTI -> token expiry
	done    chan struct{}
}

// NewTokenRevocationStore creates a store and starts a background goroutine
// that drops entries for tokens past their expiry.
func NewTokenRevocationStore() *TokenRevocationStore {
	s := &TokenRevocationStore{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// Revoke marks a token's JTI as revoked. Once the token would have expired
// anyway the entry is dropped.
func (s *TokenRevocationStore) Revoke(jti string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = expiresAt
}

func (s *TokenRevocationStore) IsRevoked(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[jti]
	return ok
}

func (s *TokenRevocationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *TokenRevocationStore) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *TokenRevocationStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *TokenRevocationStore) cleanup() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for jti, expiresAt := range s.entries {
		if now.After(expiresAt) {
			delete(s.entries, jti)
		}
	}
}
