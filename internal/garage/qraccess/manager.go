package qraccess

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTTL is how long a freshly issued code stays valid.
const DefaultTTL = 120 * time.Minute

var ErrInvalidTTL = errors.New("qraccess: ttl must be positive")

type Config struct {
	TTL       time.Duration
	Generator Generator

	// Store defaults to NewStore() stamped with Now. A supplied store keeps
	// its own clock, and the manager adopts it when Now is nil.
	Store *Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Manager issues and validates access tokens against one Store.
type Manager struct {
	ttl   time.Duration
	gen   Generator
	store *Store
	now   func() time.Time
}

// NewManager validates cfg and builds a Manager. A store it creates gets
// the manager's clock so expiry stamps and checks agree.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTTL, cfg.TTL)
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}

	now := cfg.Now
	store := cfg.Store
	switch {
	case store == nil:
		if now == nil {
			now = time.Now
		}
		store = NewStore().WithClock(now)
	case now == nil:
		now = store.clock()
	}

	return &Manager{
		ttl:   cfg.TTL,
		gen:   cfg.Generator,
		store: store,
		now:   now,
	}, nil
}

// Issue creates a new token for resourceID and then sweeps expired
// entries. Issuing twice for the same resource yields two live tokens.
func (m *Manager) Issue(resourceID string) (AccessToken, error) {
	tok, err := m.store.Reserve(m.gen, resourceID, m.ttl)
	if err != nil {
		return AccessToken{}, err
	}
	m.store.Sweep(m.now())
	return tok, nil
}

// Validate reports whether code names a live token. An expired token is
// deleted on the spot and reported invalid. Validation never consumes a
// live token.
func (m *Manager) Validate(code string) (AccessToken, bool) {
	if code == "" {
		return AccessToken{}, false
	}

	tok, ok := m.store.Get(code)
	if !ok {
		return AccessToken{}, false
	}

	now := m.now()
	if tok.ExpiredAt(now) {
		m.store.deleteIfExpired(code, now)
		return AccessToken{}, false
	}
	return tok, true
}

// Sweep removes expired tokens as of now.
func (m *Manager) Sweep() int {
	return m.store.Sweep(m.now())
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Store() *Store { return m.store }
