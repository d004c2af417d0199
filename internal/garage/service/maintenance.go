package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

type MaintenanceInput struct {
	Type        string
	PerformedAt time.Time
	Mileage     int64
	Description string
	CostCents   int64
	NextDueAt   *time.Time
	WorkshopID  string
}

func (in *MaintenanceInput) normalize() error {
	in.Type = strings.TrimSpace(in.Type)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Type == "":
		return fmt.Errorf("%w: type is required", ErrInvalidMaintenance)
	case in.PerformedAt.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidMaintenance)
	case in.Mileage < 0:
		return fmt.Errorf("%w: mileage cannot be negative", ErrInvalidMaintenance)
	case in.CostCents < 0:
		return fmt.Errorf("%w: cost cannot be negative", ErrInvalidMaintenance)
	case in.NextDueAt != nil && in.NextDueAt.Before(in.PerformedAt):
		return fmt.Errorf("%w: next due date precedes service date", ErrInvalidMaintenance)
	}
	in.PerformedAt = in.PerformedAt.UTC()
	if in.NextDueAt != nil {
		t := in.NextDueAt.UTC()
		in.NextDueAt = &t
	}
	return nil
}

// MaintenanceService writes and reads vehicle maintenance logs.
type MaintenanceService struct {
	Store store.Store
	Files Files
}

// CreateRecord appends a record to vehicleID's log. It performs no
// ownership check: callers establish authority first, either by owner
// lookup or by a validated workshop access code.
func (s *MaintenanceService) CreateRecord(ctx context.Context, vehicleID string, in MaintenanceInput, invoice *domain.Upload) (domain.MaintenanceRecord, error) {
	if err := in.normalize(); err != nil {
		return domain.MaintenanceRecord{}, err
	}

	now := time.Now().UTC()
	rec := domain.MaintenanceRecord{
		ID:          idx.New().String(),
		VehicleID:   vehicleID,
		WorkshopID:  in.WorkshopID,
		Type:        in.Type,
		PerformedAt: in.PerformedAt,
		Mileage:     in.Mileage,
		Description: in.Description,
		CostCents:   in.CostCents,
		NextDueAt:   in.NextDueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if invoice != nil {
		path, err := s.Files.Save(attachments.KindInvoice, vehicleID, *invoice)
		if err != nil {
			return domain.MaintenanceRecord{}, err
		}
		rec.InvoicePath = path
	}

	if err := s.Store.Maintenance().CreateRecord(ctx, rec); err != nil {
		removeFiles(ctx, s.Files, rec.InvoicePath)
		return domain.MaintenanceRecord{}, fmt.Errorf("create maintenance record: %w", err)
	}

	slogx.FromContext(ctx).Info("maintenance recorded",
		"record_id", rec.ID,
		"vehicle_id", vehicleID,
		"workshop_id", rec.WorkshopID,
		"invoice", rec.InvoicePath != "",
	)
	return rec, nil
}

// Create records maintenance on a vehicle the owner holds.
func (s *MaintenanceService) Create(ctx context.Context, ownerID, vehicleID string, in MaintenanceInput, invoice *domain.Upload) (domain.MaintenanceRecord, error) {
	if _, err := ownedVehicle(ctx, s.Store, vehicleID, ownerID); err != nil {
		return domain.MaintenanceRecord{}, err
	}
	in.WorkshopID = ""
	return s.CreateRecord(ctx, vehicleID, in, invoice)
}

func (s *MaintenanceService) ListForVehicle(ctx context.Context, ownerID, vehicleID string) ([]domain.MaintenanceRecord, error) {
	if _, err := ownedVehicle(ctx, s.Store, vehicleID, ownerID); err != nil {
		return nil, err
	}
	return s.Store.Maintenance().ListByVehicle(ctx, vehicleID)
}

func (s *MaintenanceService) Get(ctx context.Context, ownerID, id string) (domain.MaintenanceRecord, error) {
	return ownedRecord(ctx, s.Store, ownerID, id)
}

func ownedRecord(ctx context.Context, st store.Store, ownerID, id string) (domain.MaintenanceRecord, error) {
	rec, err := st.Maintenance().GetRecord(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}
	if _, err := ownedVehicle(ctx, st, rec.VehicleID, ownerID); errors.Is(err, ErrVehicleNotFound) {
		return domain.MaintenanceRecord{}, ErrMaintenanceNotFound
	} else if err != nil {
		return domain.MaintenanceRecord{}, err
	}
	return rec, nil
}

// Update replaces the editable fields. A new invoice replaces the old file,
// which is only removed once the row points at the new one.
func (s *MaintenanceService) Update(ctx context.Context, ownerID, id string, in MaintenanceInput, invoice *domain.Upload) (domain.MaintenanceRecord, error) {
	if err := in.normalize(); err != nil {
		return domain.MaintenanceRecord{}, err
	}

	rec, err := ownedRecord(ctx, s.Store, ownerID, id)
	if err != nil {
		return domain.MaintenanceRecord{}, err
	}

	oldInvoice := rec.InvoicePath
	rec.Type = in.Type
	rec.PerformedAt = in.PerformedAt
	rec.Mileage = in.Mileage
	rec.Description = in.Description
	rec.CostCents = in.CostCents
	rec.NextDueAt = in.NextDueAt

	if invoice != nil {
		path, err := s.Files.Save(attachments.KindInvoice, rec.VehicleID, *invoice)
		if err != nil {
			return domain.MaintenanceRecord{}, err
		}
		rec.InvoicePath = path
	}

	if err := s.Store.Maintenance().UpdateRecord(ctx, rec); err != nil {
		if rec.InvoicePath != oldInvoice {
			removeFiles(ctx, s.Files, rec.InvoicePath)
		}
		return domain.MaintenanceRecord{}, fmt.Errorf("update maintenance record: %w", err)
	}
	if rec.InvoicePath != oldInvoice {
		removeFiles(ctx, s.Files, oldInvoice)
	}
	rec.UpdatedAt = time.Now().UTC()
	return rec, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, ownerID, id string) error {
	rec, err := ownedRecord(ctx, s.Store, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.Store.Maintenance().DeleteRecord(ctx, rec.ID); err != nil {
		return err
	}
	removeFiles(ctx, s.Files, rec.InvoicePath)
	return nil
}

// OpenInvoice returns the invoice file and its content type. The caller
// closes the file.
func (s *MaintenanceService) OpenInvoice(ctx context.Context, ownerID, id string) (*os.File, string, error) {
	rec, err := ownedRecord(ctx, s.Store, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	if rec.InvoicePath == "" {
		return nil, "", ErrNoInvoice
	}
	return s.Files.Open(rec.InvoicePath)
}
