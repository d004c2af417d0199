package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

const minVehicleYear = 1900

type VehicleInput struct {
	Plate string
	Make  string
	Model string
	Year  int
	Color string
}

type VehicleService struct {
	Store store.Store
	Files Files
}

// NormalizePlate upper-cases a plate and strips spaces and dashes.
func NormalizePlate(p string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(p)))
}

func (in *VehicleInput) normalize(now time.Time) error {
	in.Plate = NormalizePlate(in.Plate)
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Color = strings.TrimSpace(in.Color)

	if in.Plate == "" || in.Make == "" || in.Model == "" {
		return fmt.Errorf("%w: plate, make and model are required", ErrInvalidVehicle)
	}
	if in.Year < minVehicleYear || in.Year > now.Year()+1 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidVehicle, in.Year)
	}
	return nil
}

// ownedVehicle returns ErrVehicleNotFound for both missing and foreign
// vehicles so callers cannot probe other owners' data.
func ownedVehicle(ctx context.Context, s store.Store, vehicleID, ownerID string) (domain.Vehicle, error) {
	v, err := s.Vehicles().GetVehicleOwnedBy(ctx, vehicleID, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

func (s *VehicleService) List(ctx context.Context, ownerID string) ([]domain.Vehicle, error) {
	return s.Store.Vehicles().ListVehiclesByOwner(ctx, ownerID)
}

func (s *VehicleService) Register(ctx context.Context, ownerID string, in VehicleInput) (domain.Vehicle, error) {
	now := time.Now().UTC()
	if err := in.normalize(now); err != nil {
		return domain.Vehicle{}, err
	}

	v := domain.Vehicle{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Plate:     in.Plate,
		Make:      in.Make,
		Model:     in.Model,
		Year:      in.Year,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.Store.Vehicles().CreateVehicle(ctx, v)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Vehicle{}, ErrPlateTaken
	}
	if err != nil {
		return domain.Vehicle{}, err
	}

	slogx.FromContext(ctx).Info("vehicle registered", "vehicle_id", v.ID, "plate", v.Plate)
	return v, nil
}

func (s *VehicleService) GetByPlate(ctx context.Context, ownerID, plate string) (domain.Vehicle, error) {
	return vehicleByPlate(ctx, s.Store, ownerID, plate)
}

func vehicleByPlate(ctx context.Context, s store.Store, ownerID, plate string) (domain.Vehicle, error) {
	v, err := s.Vehicles().GetVehicleByPlate(ctx, NormalizePlate(plate))
	if errors.Is(err, store.ErrNotFound) || (err == nil && v.OwnerID != ownerID) {
		return domain.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

func (s *VehicleService) UpdateByPlate(ctx context.Context, ownerID, plate string, in VehicleInput) (domain.Vehicle, error) {
	if err := in.normalize(time.Now().UTC()); err != nil {
		return domain.Vehicle{}, err
	}

	var out domain.Vehicle
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		v, err := vehicleByPlate(ctx, tx, ownerID, plate)
		if err != nil {
			return err
		}

		v.Plate, v.Make, v.Model, v.Year, v.Color = in.Plate, in.Make, in.Model, in.Year, in.Color
		err = tx.Vehicles().UpdateVehicle(ctx, v)
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrPlateTaken
		}
		out = v
		return err
	})
	return out, err
}

// DeleteByPlate removes the vehicle with its maintenance log, obligations
// and their files.
func (s *VehicleService) DeleteByPlate(ctx context.Context, ownerID, plate string) error {
	var paths []string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		v, err := vehicleByPlate(ctx, tx, ownerID, plate)
		if err != nil {
			return err
		}

		records, err := tx.Maintenance().ListByVehicle(ctx, v.ID)
		if err != nil {
			return err
		}
		for _, r := range records {
			paths = append(paths, r.InvoicePath)
		}
		obligations, err := tx.Obligations().ListByVehicle(ctx, v.ID)
		if err != nil {
			return err
		}
		for _, o := range obligations {
			paths = append(paths, o.DocumentPath)
		}

		return tx.Vehicles().DeleteVehicle(ctx, v.ID)
	})
	if err != nil {
		return err
	}

	removeFiles(ctx, s.Files, paths...)
	slogx.FromContext(ctx).Info("vehicle deleted", "plate", NormalizePlate(plate))
	return nil
}
