package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// DefaultReminderWindow is how far ahead reminders look.
const DefaultReminderWindow = 72 * time.Hour

// Notifier delivers a reminder, for example to a calendar or mailbox.
type Notifier interface {
	Notify(ctx context.Context, r domain.Reminder) error
}

// LogNotifier writes reminders to the log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(_ context.Context, r domain.Reminder) error {
	n.Logger.Info("reminder due",
		"kind", r.Kind,
		"owner_id", r.OwnerID,
		"plate", r.Plate,
		"title", r.Title,
		"due_at", r.DueAt.Format(time.DateOnly),
	)
	return nil
}

type ReminderService struct {
	Store    store.Store
	Notifier Notifier
}

// Upcoming lists obligation renewals and scheduled maintenance falling
// between the start of today and now+window, soonest first.
func (s *ReminderService) Upcoming(ctx context.Context, ownerID string, now time.Time, window time.Duration) ([]domain.Reminder, error) {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	from := domain.Day(now)
	until := now.Add(window)
	inRange := func(t *time.Time) bool {
		return t != nil && !t.Before(from) && !t.After(until)
	}

	vehicles, err := s.Store.Vehicles().ListVehiclesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	plates := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.Plate
	}

	obligations, err := s.Store.Obligations().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.Maintenance().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := []domain.Reminder{}
	for _, o := range obligations {
		if !inRange(o.RenewalAt) {
			continue
		}
		out = append(out, domain.Reminder{
			Kind:      domain.ReminderObligation,
			OwnerID:   ownerID,
			VehicleID: o.VehicleID,
			Plate:     plates[o.VehicleID],
			SubjectID: o.ID,
			Title:     "Renew " + o.Name,
			DueAt:     *o.RenewalAt,
		})
	}
	for _, m := range records {
		if !inRange(m.NextDueAt) {
			continue
		}
		out = append(out, domain.Reminder{
			Kind:      domain.ReminderMaintenance,
			OwnerID:   ownerID,
			VehicleID: m.VehicleID,
			Plate:     plates[m.VehicleID],
			SubjectID: m.ID,
			Title:     "Service due: " + m.Type,
			DueAt:     *m.NextDueAt,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.Reminder) int {
		return a.DueAt.Compare(b.DueAt)
	})
	return out, nil
}

// Dispatch hands every owner's upcoming reminders to the notifier and
// returns how many were delivered. A failing owner or notification does not
// stop the rest.
func (s *ReminderService) Dispatch(ctx context.Context, now time.Time, window time.Duration) (int, error) {
	ids, err := s.Store.Owners().ListOwnerIDs(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, id := range ids {
		reminders, err := s.Upcoming(ctx, id, now, window)
		if err != nil {
			slogx.FromContext(ctx).Error("reminder scan failed", "owner_id", id, "error", err)
			continue
		}
		for _, r := range reminders {
			if err := s.Notifier.Notify(ctx, r); err != nil {
				slogx.FromContext(ctx).Error("reminder delivery failed", "owner_id", id, "subject_id", r.SubjectID, "error", err)
				continue
			}
			sent++
		}
	}
	return sent, nil
}
