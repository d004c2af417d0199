package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// WorkshopService serves workshops that arrive through a QR access code.
// The only authority it recognises is the code; the vehicle written to is
// always the one the code was issued for.
type WorkshopService struct {
	Store       store.Store
	Tokens      *qraccess.Manager
	Maintenance *MaintenanceService
}

func (s *WorkshopService) authorize(ctx context.Context, code string) (qraccess.AccessToken, error) {
	if code == "" {
		return qraccess.AccessToken{}, ErrTokenMissing
	}
	tok, ok := s.Tokens.Validate(code)
	if !ok {
		slogx.FromContext(ctx).Info("workshop access code rejected", "code", qraccess.Redact(code))
		return qraccess.AccessToken{}, ErrTokenInvalid
	}
	return tok, nil
}

// OpenForm validates the code before the submission form is shown.
func (s *WorkshopService) OpenForm(ctx context.Context, code string) (qraccess.AccessToken, error) {
	return s.authorize(ctx, code)
}

// Submit re-validates the code and records the maintenance against the
// code's vehicle. A code stays usable until it expires.
func (s *WorkshopService) Submit(ctx context.Context, code string, sub domain.WorkshopSubmission, invoice *domain.Upload) (domain.MaintenanceRecord, error) {
	tok, err := s.authorize(ctx, code)
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}

	// The vehicle may have been deleted after the code was handed out.
	if _, err := s.Store.Vehicles().GetVehicleByID(ctx, tok.ResourceID); errors.Is(err, store.ErrNotFound) {
		s.Tokens.Store().Delete(tok.Code)
		return domain.MaintenanceRecord{}, ErrTokenInvalid
	} else if err != nil {
		return domain.MaintenanceRecord{}, err
	}

	var workshopID string
	if taxID := strings.TrimSpace(sub.WorkshopTaxID); taxID != "" {
		w, err := s.findOrCreateWorkshop(ctx, taxID, strings.TrimSpace(sub.WorkshopName))
		if err != nil {
			return domain.MaintenanceRecord{}, fmt.Errorf("resolve workshop: %w", err)
		}
		workshopID = w.ID
	}

	return s.Maintenance.CreateRecord(ctx, tok.ResourceID, MaintenanceInput{
		Type:        sub.Type,
		PerformedAt: sub.PerformedAt,
		Mileage:     sub.Mileage,
		Description: sub.Description,
		CostCents:   sub.CostCents,
		NextDueAt:   sub.NextDueAt,
		WorkshopID:  workshopID,
	}, invoice)
}

func (s *WorkshopService) findOrCreateWorkshop(ctx context.Context, taxID, name string) (domain.Workshop, error) {
	w, err := s.Store.Workshops().GetWorkshopByTaxID(ctx, taxID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Workshop{}, err
	}

	if name == "" {
		name = taxID
	}
	w = domain.Workshop{
		ID:        idx.New().String(),
		TaxID:     taxID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err = s.Store.Workshops().CreateWorkshop(ctx, w)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with a concurrent submission from the same shop.
		return s.Store.Workshops().GetWorkshopByTaxID(ctx, taxID)
	}
	if err != nil {
		return domain.Workshop{}, err
	}

	slogx.FromContext(ctx).Info("workshop registered", "workshop_id", w.ID)
	return w, nil
}
