package qraccess

import (
	"errors"
	"sync"
	"time"
)

// MaxGenerateAttempts bounds collision retries in Reserve.
const MaxGenerateAttempts = 16

var (
	ErrCodeExists          = errors.New("qraccess: code already in use")
	ErrGenerationExhausted = errors.New("qraccess: could not generate an unused code")
)

// Store is the in-memory set of live tokens. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]AccessToken
	now    func() time.Time
}

// NewStore returns an empty store using the wall clock.
func NewStore() *Store {
	return &Store{
		tokens: make(map[string]AccessToken),
		now:    time.Now,
	}
}

// WithClock replaces the clock used to stamp expiry times.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

func (s *Store) clock() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Put inserts a token expiring ttl from now. An existing code is never
// overwritten.
func (s *Store) Put(code, resourceID string, ttl time.Duration) (AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.tokens[code]; taken {
		return AccessToken{}, ErrCodeExists
	}
	return s.putLocked(code, resourceID, ttl), nil
}

func (s *Store) putLocked(code, resourceID string, ttl time.Duration) AccessToken {
	tok := AccessToken{
		Code:       code,
		ResourceID: resourceID,
		ExpiresAt:  s.now().Add(ttl),
	}
	s.tokens[code] = tok
	return tok
}

// Reserve draws codes from gen until one is not live, then stores it.
// Generation and insertion happen under one lock so two callers can never
// be handed the same code.
func (s *Store) Reserve(gen Generator, resourceID string, ttl time.Duration) (AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range MaxGenerateAttempts {
		code, err := gen.Generate()
		if err != nil {
			return AccessToken{}, err
		}
		if _, taken := s.tokens[code]; taken {
			continue
		}
		return s.putLocked(code, resourceID, ttl), nil
	}
	return AccessToken{}, ErrGenerationExhausted
}

// Get looks a code up without side effects.
func (s *Store) Get(code string) (AccessToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tok, ok := s.tokens[code]
	return tok, ok
}

// Delete removes a code. Missing codes are ignored.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	delete(s.tokens, code)
	s.mu.Unlock()
}

// deleteIfExpired removes code only if the stored entry is still expired at
// now, so a concurrent re-issue of the same code is left alone.
func (s *Store) deleteIfExpired(code string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok, ok := s.tokens[code]; ok && tok.ExpiredAt(now) {
		delete(s.tokens, code)
	}
}

// Sweep drops every token whose expiry is strictly before now and returns
// how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for code, tok := range s.tokens {
		if tok.ExpiresAt.Before(now) {
			delete(s.tokens, code)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored tokens, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
