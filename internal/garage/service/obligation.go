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

type ObligationInput struct {
	Name      string
	Type      string
	IssuedAt  *time.Time
	RenewalAt *time.Time
}

func (in *ObligationInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	if in.Name == "" || in.Type == "" {
		return fmt.Errorf("%w: name and type are required", ErrInvalidObligation)
	}
	if in.IssuedAt != nil && in.RenewalAt != nil && in.RenewalAt.Before(*in.IssuedAt) {
		return fmt.Errorf("%w: renewal precedes issue date", ErrInvalidObligation)
	}
	return nil
}

// ObligationService manages legal documents such as insurance and
// inspection certificates.
type ObligationService struct {
	Store store.Store
	Files Files
}

func (s *ObligationService) Create(ctx context.Context, ownerID, vehicleID string, in ObligationInput, doc *domain.Upload) (domain.Obligation, error) {
	if err := in.normalize(); err != nil {
		return domain.Obligation{}, err
	}
	if doc == nil {
		return domain.Obligation{}, ErrDocumentRequired
	}
	if _, err := ownedVehicle(ctx, s.Store, vehicleID, ownerID); err != nil {
		return domain.Obligation{}, err
	}

	path, err := s.Files.Save(attachments.KindObligation, vehicleID, *doc)
	if err != nil {
		return domain.Obligation{}, err
	}

	now := time.Now().UTC()
	o := domain.Obligation{
		ID:           idx.New().String(),
		VehicleID:    vehicleID,
		Name:         in.Name,
		Type:         in.Type,
		IssuedAt:     in.IssuedAt,
		RenewalAt:    in.RenewalAt,
		DocumentPath: path,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Obligations().CreateObligation(ctx, o); err != nil {
		removeFiles(ctx, s.Files, path)
		return domain.Obligation{}, fmt.Errorf("create obligation: %w", err)
	}

	slogx.FromContext(ctx).Info("obligation recorded", "obligation_id", o.ID, "vehicle_id", vehicleID)
	return o, nil
}

func (s *ObligationService) ListForVehicle(ctx context.Context, ownerID, vehicleID string) ([]domain.Obligation, error) {
	if _, err := ownedVehicle(ctx, s.Store, vehicleID, ownerID); err != nil {
		return nil, err
	}
	return s.Store.Obligations().ListByVehicle(ctx, vehicleID)
}

func (s *ObligationService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Obligation, error) {
	return s.Store.Obligations().ListByOwner(ctx, ownerID)
}

func (s *ObligationService) Get(ctx context.Context, ownerID, id string) (domain.Obligation, error) {
	o, err := s.Store.Obligations().GetObligation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Obligation{}, ErrObligationNotFound
	}
	if err != nil {
		return domain.Obligation{}, err
	}
	if _, err := ownedVehicle(ctx, s.Store, o.VehicleID, ownerID); errors.Is(err, ErrVehicleNotFound) {
		return domain.Obligation{}, ErrObligationNotFound
	} else if err != nil {
		return domain.Obligation{}, err
	}
	return o, nil
}

// Update replaces the editable fields and optionally the document.
func (s *ObligationService) Update(ctx context.Context, ownerID, id string, in ObligationInput, doc *domain.Upload) (domain.Obligation, error) {
	if err := in.normalize(); err != nil {
		return domain.Obligation{}, err
	}
	o, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Obligation{}, err
	}

	oldDoc := o.DocumentPath
	o.Name, o.Type, o.IssuedAt, o.RenewalAt = in.Name, in.Type, in.IssuedAt, in.RenewalAt

	if doc != nil {
		path, err := s.Files.Save(attachments.KindObligation, o.VehicleID, *doc)
		if err != nil {
			return domain.Obligation{}, err
		}
		o.DocumentPath = path
	}

	if err := s.Store.Obligations().UpdateObligation(ctx, o); err != nil {
		if o.DocumentPath != oldDoc {
			removeFiles(ctx, s.Files, o.DocumentPath)
		}
		return domain.Obligation{}, fmt.Errorf("update obligation: %w", err)
	}
	if o.DocumentPath != oldDoc {
		removeFiles(ctx, s.Files, oldDoc)
	}
	o.UpdatedAt = time.Now().UTC()
	return o, nil
}

func (s *ObligationService) Delete(ctx context.Context, ownerID, id string) error {
	o, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.Store.Obligations().DeleteObligation(ctx, o.ID); err != nil {
		return err
	}
	removeFiles(ctx, s.Files, o.DocumentPath)
	return nil
}

func (s *ObligationService) OpenDocument(ctx context.Context, ownerID, id string) (*os.File, string, error) {
	o, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	return s.Files.Open(o.DocumentPath)
}
