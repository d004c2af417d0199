package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
)

// HousekeepingService periodically sweeps expired workshop access codes and
// dispatches due reminders.
type HousekeepingService struct {
	Tokens    *qraccess.Manager
	Reminders *ReminderService
	Logger    *slog.Logger
	Interval  time.Duration
	Window    time.Duration
	Now       func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults the interval to one hour. reminders may be
// nil to only sweep codes.
func NewHousekeepingService(tokens *qraccess.Manager, reminders *ReminderService, logger *slog.Logger, interval, window time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Tokens:    tokens,
		Reminders: reminders,
		Logger:    logger,
		Interval:  interval,
		Window:    window,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs one pass immediately and then one per interval until Stop.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-flight pass has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())
	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single sweep and reminder pass.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	swept := s.Tokens.Sweep()
	s.Logger.Debug("swept expired access codes", "removed", swept, "live", s.Tokens.Store().Len())

	if s.Reminders == nil {
		return
	}
	sent, err := s.Reminders.Dispatch(ctx, s.Now(), s.Window)
	if err != nil {
		s.Logger.Error("reminder dispatch failed", "error", err)
		return
	}
	s.Logger.Info("housekeeping pass completed", "codes_swept", swept, "reminders_sent", sent)
}
