package qraccess_test

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, clock *fakeClock) *qraccess.Manager {
	t.Helper()
	m, err := qraccess.NewManager(qraccess.Config{
		TTL: qraccess.DefaultTTL,
		Now: clock.Now,
	})
	require.NoError(t, err)
	return m
}

func TestNewManager_RejectsBadConfig(t *testing.T) {
	_, err := qraccess.NewManager(qraccess.Config{TTL: 0})
	require.ErrorIs(t, err, qraccess.ErrInvalidTTL)

	_, err = qraccess.NewManager(qraccess.Config{TTL: -time.Minute})
	require.ErrorIs(t, err, qraccess.ErrInvalidTTL)

	_, err = qraccess.NewManager(qraccess.Config{TTL: time.Minute, Generator: qraccess.Generator{Length: 1}})
	require.ErrorIs(t, err, qraccess.ErrBadGenerator)
}

func TestManager_IssueThenValidate(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	tok, err := m.Issue("veh-1")
	require.NoError(t, err)
	require.Equal(t, "veh-1", tok.ResourceID)
	require.Equal(t, clock.Now().Add(120*time.Minute), tok.ExpiresAt)

	got, ok := m.Validate(tok.Code)
	require.True(t, ok)
	require.Equal(t, tok, got)
}

func TestManager_ValidateIsMultiUse(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	tok, err := m.Issue("veh-1")
	require.NoError(t, err)

	for range 5 {
		_, ok := m.Validate(tok.Code)
		require.True(t, ok)
		clock.Advance(10 * time.Minute)
	}
	require.Equal(t, 1, m.Store().Len())
}

func TestManager_ValidateUnknown(t *testing.T) {
	m := newManager(t, newFakeClock())

	_, ok := m.Validate("NOPE-NOPE")
	require.False(t, ok)
	_, ok = m.Validate("")
	require.False(t, ok)
}

func TestManager_LazyExpiry(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	tok, err := m.Issue("veh-1")
	require.NoError(t, err)

	clock.Advance(m.TTL() - time.Second)
	_, ok := m.Validate(tok.Code)
	require.True(t, ok)

	// now == ExpiresAt is already expired.
	clock.Advance(time.Second)
	_, ok = m.Validate(tok.Code)
	require.False(t, ok)

	_, present := m.Store().Get(tok.Code)
	require.False(t, present, "expired token is removed on first sight")

	// Never resurrected.
	clock.Advance(-time.Hour)
	_, ok = m.Validate(tok.Code)
	require.False(t, ok)
}

func TestManager_IndependentTokensPerResource(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	a, err := m.Issue("veh-1")
	require.NoError(t, err)
	clock.Advance(time.Minute)
	b, err := m.Issue("veh-1")
	require.NoError(t, err)

	require.NotEqual(t, a.Code, b.Code)
	require.True(t, b.ExpiresAt.After(a.ExpiresAt))

	_, ok := m.Validate(a.Code)
	require.True(t, ok)
	_, ok = m.Validate(b.Code)
	require.True(t, ok)
}

func TestManager_ExpiryOfOneTokenLeavesTheOtherLive(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	first, err := m.Issue("veh-1")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	second, err := m.Issue("veh-1")
	require.NoError(t, err)

	clock.Advance(91 * time.Minute)

	_, ok := m.Validate(first.Code)
	require.False(t, ok)

	tok, ok := m.Validate(second.Code)
	require.True(t, ok)
	require.Equal(t, "veh-1", tok.ResourceID)
	require.Equal(t, 1, m.Store().Len())
}

func TestNewManager_SharedStoreKeepsItsClock(t *testing.T) {
	storeClock := newFakeClock()
	other := newFakeClock()
	other.Advance(time.Hour)

	store := qraccess.NewStore().WithClock(storeClock.Now)

	adopting, err := qraccess.NewManager(qraccess.Config{TTL: time.Minute, Store: store})
	require.NoError(t, err)
	_, err = qraccess.NewManager(qraccess.Config{TTL: time.Minute, Store: store, Now: other.Now})
	require.NoError(t, err)

	tok, err := store.Put("ABCD-EFGH", "veh-1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, storeClock.Now().Add(time.Minute), tok.ExpiresAt)

	_, ok := adopting.Validate(tok.Code)
	require.True(t, ok)
	storeClock.Advance(time.Minute)
	_, ok = adopting.Validate(tok.Code)
	require.False(t, ok)
}

func TestManager_IssueSweeps(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	old, err := m.Issue("veh-1")
	require.NoError(t, err)

	clock.Advance(m.TTL() + time.Minute)
	_, err = m.Issue("veh-2")
	require.NoError(t, err)

	_, present := m.Store().Get(old.Code)
	require.False(t, present)
	require.Equal(t, 1, m.Store().Len())
}

func TestManager_Sweep(t *testing.T) {
	clock := newFakeClock()
	m := newManager(t, clock)

	for _, id := range []string{"a", "b", "c"} {
		_, err := m.Issue(id)
		require.NoError(t, err)
	}
	require.Equal(t, 0, m.Sweep())

	clock.Advance(m.TTL() + time.Second)
	require.Equal(t, 3, m.Sweep())
	require.Equal(t, 0, m.Store().Len())
}

func TestManager_ConcurrentIssueAndValidate(t *testing.T) {
	m := newManager(t, newFakeClock())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				tok, err := m.Issue("veh")
				if err != nil {
					t.Error(err)
					return
				}
				if _, ok := m.Validate(tok.Code); !ok {
					t.Errorf("freshly issued %s not valid", tok.Code)
					return
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1600, m.Store().Len())
}
