// pkg/memcache/login_tokens.go
package memcache

import (
	"sync"
	"time"
)

// LoginTokenStore keeps pending magic-link tokens. Tokens are looked up by
// selector; the verifier half is stored hashed and checked by the auth service.
type LoginTokenStore interface {
	Set(selector string, email string, verifierHash string, ttl time.Duration)

	// Consume returns the stored email and verifier hash for selector if not
	// expired, and removes the entry (single-use). ok is false if missing/expired.
	Consume(selector string) (email string, verifierHash string, ok bool)

	Peek(selector string) (email string, ok bool)
}

type entry struct {
	email        string
	verifierHash string
	expiresAt    time.Time
}

type LoginTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLoginTokens() *LoginTokens {
	return &LoginTokens{
		data: make(map[string]entry),
	}
}

func (s *LoginTokens) Set(selector string, email string, verifierHash string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[selector] = entry{
		email:        email,
		verifierHash: verifierHash,
		expiresAt:    time.Now().Add(ttl),
	}
}

func (s *LoginTokens) Consume(selector string) (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[selector]
	if !ok {
		return "", "", false
	}
	delete(s.data, selector) // single-use
	if time.Now().After(e.expiresAt) {
		return "", "", false
	}
	return e.email, e.verifierHash, true
}

func (s *LoginTokens) Peek(selector string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[selector]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}
