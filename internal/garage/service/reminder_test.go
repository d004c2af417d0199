package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	got  []domain.Reminder
	fail string
}

func (n *recordingNotifier) Notify(_ context.Context, r domain.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if r.SubjectID == n.fail {
		return errors.New("mailbox full")
	}
	n.got = append(n.got, r)
	return nil
}

func TestReminders(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	alice := f.owner(t, "alice@example.com")
	bob := f.owner(t, "bob@example.com")
	v := f.vehicle(t, alice.ID, "REM001")
	w := f.vehicle(t, bob.ID, "REM002")

	soon, err := f.obligations.Create(ctx, alice.ID, v.ID, ObligationInput{
		Name: "Insurance", Type: "insurance", RenewalAt: ptr(now.Add(48 * time.Hour)),
	}, pdfUpload())
	require.NoError(t, err)
	_, err = f.obligations.Create(ctx, alice.ID, v.ID, ObligationInput{
		Name: "Inspection", Type: "inspection", RenewalAt: ptr(now.AddDate(0, 2, 0)),
	}, pdfUpload())
	require.NoError(t, err)

	due, err := f.maintenance.Create(ctx, alice.ID, v.ID, MaintenanceInput{
		Type: "oil change", PerformedAt: now.AddDate(0, -6, 0), NextDueAt: ptr(domain.Day(now)),
	}, nil)
	require.NoError(t, err)

	_, err = f.maintenance.Create(ctx, bob.ID, w.ID, MaintenanceInput{
		Type: "tyres", PerformedAt: now.AddDate(0, -1, 0), NextDueAt: ptr(now.Add(24 * time.Hour)),
	}, nil)
	require.NoError(t, err)

	t.Run("upcoming", func(t *testing.T) {
		rs, err := f.reminders.Upcoming(ctx, alice.ID, now, 72*time.Hour)
		require.NoError(t, err)
		require.Len(t, rs, 2)

		require.Equal(t, domain.ReminderMaintenance, rs[0].Kind)
		require.Equal(t, due.ID, rs[0].SubjectID)
		require.Equal(t, "REM001", rs[0].Plate)

		require.Equal(t, domain.ReminderObligation, rs[1].Kind)
		require.Equal(t, soon.ID, rs[1].SubjectID)
	})

	t.Run("dispatch continues past failures", func(t *testing.T) {
		n := &recordingNotifier{fail: soon.ID}
		f.reminders.Notifier = n

		sent, err := f.reminders.Dispatch(ctx, now, 72*time.Hour)
		require.NoError(t, err)
		require.Equal(t, 2, sent)
		require.Len(t, n.got, 2)
	})
}

func TestHousekeepingRunOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	alice := f.owner(t, "alice@example.com")
	v := f.vehicle(t, alice.ID, "HK0001")
	_, err := f.maintenance.Create(ctx, alice.ID, v.ID, MaintenanceInput{
		Type: "service", PerformedAt: f.clock.Now().AddDate(0, -1, 0), NextDueAt: ptr(f.clock.Now().Add(24 * time.Hour)),
	}, nil)
	require.NoError(t, err)

	_, err = f.tokens.Issue(v.ID)
	require.NoError(t, err)
	// Sweep keeps an entry until its expiry instant has passed.
	f.clock.Advance(qraccess.DefaultTTL + time.Second)

	n := &recordingNotifier{}
	f.reminders.Notifier = n

	hk := NewHousekeepingService(f.tokens, f.reminders, slogx.Discard(), time.Hour, 72*time.Hour)
	hk.Now = f.clock.Now
	hk.RunOnce(ctx)

	require.Zero(t, f.tokens.Store().Len())
	require.Len(t, n.got, 1)
}

func TestHousekeepingStartStop(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.tokens.Issue("vehicle")
	require.NoError(t, err)
	f.clock.Advance(qraccess.DefaultTTL + time.Second)

	hk := NewHousekeepingService(f.tokens, nil, slogx.Discard(), time.Millisecond, 0)
	hk.Start()
	require.Eventually(t, func() bool { return f.tokens.Store().Len() == 0 }, time.Second, 5*time.Millisecond)
	hk.Stop()
}
