package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/internal/garage/store/drivers/sqlite"
	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedOwner(t *testing.T, s store.Store, email string) domain.Owner {
	t.Helper()
	now := time.Now().UTC()
	o := domain.Owner{
		ID:           idx.New().String(),
		Name:         "Ana",
		NationalID:   "CC-" + email,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Owners().CreateOwner(context.Background(), o))
	return o
}

func seedVehicle(t *testing.T, s store.Store, ownerID, plate string) domain.Vehicle {
	t.Helper()
	now := time.Now().UTC()
	v := domain.Vehicle{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Plate:     plate,
		Make:      "Mazda",
		Model:     "3",
		Year:      2019,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Vehicles().CreateVehicle(context.Background(), v))
	return v
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestOwners(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	o := seedOwner(t, s, "ana@example.com")

	got, err := s.Owners().GetOwnerByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)
	require.False(t, got.TOTPEnabled)
	require.Empty(t, got.Phone)

	got, err = s.Owners().GetOwnerByNationalID(ctx, o.NationalID)
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)

	t.Run("duplicate email", func(t *testing.T) {
		dup := o
		dup.ID = idx.New().String()
		dup.NationalID = "other"
		require.ErrorIs(t, s.Owners().CreateOwner(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		got.Phone = "3001234567"
		got.Name = "Ana María"
		require.NoError(t, s.Owners().UpdateOwner(ctx, got))

		again, err := s.Owners().GetOwnerByID(ctx, o.ID)
		require.NoError(t, err)
		require.Equal(t, "3001234567", again.Phone)
		require.Equal(t, "Ana María", again.Name)
	})

	t.Run("totp lifecycle", func(t *testing.T) {
		require.ErrorIs(t, s.Owners().EnableTOTP(ctx, o.ID), store.ErrNotFound, "no secret yet")

		require.NoError(t, s.Owners().SetTOTPSecret(ctx, o.ID, "SECRET"))
		require.NoError(t, s.Owners().EnableTOTP(ctx, o.ID))
		got, err := s.Owners().GetOwnerByID(ctx, o.ID)
		require.NoError(t, err)
		require.True(t, got.TOTPEnabled)
		require.Equal(t, "SECRET", got.TOTPSecret)

		require.NoError(t, s.Owners().DisableTOTP(ctx, o.ID))
		got, err = s.Owners().GetOwnerByID(ctx, o.ID)
		require.NoError(t, err)
		require.False(t, got.TOTPEnabled)
		require.Empty(t, got.TOTPSecret)
	})

	t.Run("list ids", func(t *testing.T) {
		other := seedOwner(t, s, "ben@example.com")
		ids, err := s.Owners().ListOwnerIDs(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{o.ID, other.ID}, ids)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.Owners().GetOwnerByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Owners().DeleteOwner(ctx, "nope"), store.ErrNotFound)
	})
}

func TestVehicles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ana := seedOwner(t, s, "ana@example.com")
	ben := seedOwner(t, s, "ben@example.com")
	v := seedVehicle(t, s, ana.ID, "ABC123")

	t.Run("owned by", func(t *testing.T) {
		got, err := s.Vehicles().GetVehicleOwnedBy(ctx, v.ID, ana.ID)
		require.NoError(t, err)
		require.Equal(t, "ABC123", got.Plate)

		_, err = s.Vehicles().GetVehicleOwnedBy(ctx, v.ID, ben.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Vehicles().GetVehicleOwnedBy(ctx, "missing", ana.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("plate unique across owners", func(t *testing.T) {
		dup := v
		dup.ID = idx.New().String()
		dup.OwnerID = ben.ID
		require.ErrorIs(t, s.Vehicles().CreateVehicle(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("list and update", func(t *testing.T) {
		seedVehicle(t, s, ana.ID, "AAA111")
		list, err := s.Vehicles().ListVehiclesByOwner(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "AAA111", list[0].Plate)

		v.Color = "red"
		v.Plate = "XYZ999"
		require.NoError(t, s.Vehicles().UpdateVehicle(ctx, v))
		got, err := s.Vehicles().GetVehicleByPlate(ctx, "XYZ999")
		require.NoError(t, err)
		require.Equal(t, "red", got.Color)

		empty, err := s.Vehicles().ListVehiclesByOwner(ctx, ben.ID)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}

func TestMaintenanceAndCascade(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ana := seedOwner(t, s, "ana@example.com")
	v := seedVehicle(t, s, ana.ID, "ABC123")

	w := domain.Workshop{ID: idx.New().String(), TaxID: "900123", Name: "Taller Uno", CreatedAt: time.Now()}
	require.NoError(t, s.Workshops().CreateWorkshop(ctx, w))

	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 6, 0)
	older := domain.MaintenanceRecord{
		ID: idx.New().String(), VehicleID: v.ID, Type: "oil", PerformedAt: day.AddDate(0, -3, 0),
		Mileage: 10000, CostCents: 5000, CreatedAt: day, UpdatedAt: day,
	}
	newer := domain.MaintenanceRecord{
		ID: idx.New().String(), VehicleID: v.ID, WorkshopID: w.ID, Type: "brakes", PerformedAt: day,
		Mileage: 12000, Description: "pads", CostCents: 25000, NextDueAt: &next,
		InvoicePath: "invoices/x.pdf", CreatedAt: day, UpdatedAt: day,
	}
	require.NoError(t, s.Maintenance().CreateRecord(ctx, older))
	require.NoError(t, s.Maintenance().CreateRecord(ctx, newer))

	list, err := s.Maintenance().ListByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID)
	require.Equal(t, w.ID, list[0].WorkshopID)
	require.NotNil(t, list[0].NextDueAt)
	require.True(t, next.Equal(*list[0].NextDueAt))
	require.True(t, day.Equal(list[0].PerformedAt))
	require.Nil(t, list[1].NextDueAt)

	byOwner, err := s.Maintenance().ListByOwner(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 2)

	got, err := s.Workshops().GetWorkshopByTaxID(ctx, "900123")
	require.NoError(t, err)
	require.Equal(t, w.ID, got.ID)

	renewal := day.AddDate(1, 0, 0)
	ob := domain.Obligation{
		ID: idx.New().String(), VehicleID: v.ID, Name: "SOAT 2025", Type: "soat",
		RenewalAt: &renewal, DocumentPath: "obligations/a.pdf", CreatedAt: day, UpdatedAt: day,
	}
	require.NoError(t, s.Obligations().CreateObligation(ctx, ob))

	// Deleting the owner removes vehicles, records and obligations.
	require.NoError(t, s.Owners().DeleteOwner(ctx, ana.ID))
	_, err = s.Vehicles().GetVehicleByID(ctx, v.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Maintenance().GetRecord(ctx, newer.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Obligations().GetObligation(ctx, ob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestObligationsOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ana := seedOwner(t, s, "ana@example.com")
	v := seedVehicle(t, s, ana.ID, "ABC123")

	now := time.Now().UTC()
	late := now.AddDate(0, 2, 0)
	soon := now.AddDate(0, 0, 5)
	for _, o := range []domain.Obligation{
		{ID: "c", Name: "undated", RenewalAt: nil},
		{ID: "a", Name: "late", RenewalAt: &late},
		{ID: "b", Name: "soon", RenewalAt: &soon},
	} {
		o.VehicleID, o.Type, o.DocumentPath, o.CreatedAt, o.UpdatedAt = v.ID, "tax", "doc.pdf", now, now
		require.NoError(t, s.Obligations().CreateObligation(ctx, o))
	}

	list, err := s.Obligations().ListByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"soon", "late", "undated"}, []string{list[0].Name, list[1].Name, list[2].Name})

	list[0].Name = "renamed"
	require.NoError(t, s.Obligations().UpdateObligation(ctx, list[0]))
	got, err := s.Obligations().GetObligation(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Name)

	require.NoError(t, s.Obligations().DeleteObligation(ctx, "b"))
	require.ErrorIs(t, s.Obligations().DeleteObligation(ctx, "b"), store.ErrNotFound)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ana := seedOwner(t, s, "ana@example.com")

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			seedVehicle(t, tx, ana.ID, "TX0001")
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Vehicles().GetVehicleByPlate(ctx, "TX0001")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			seedVehicle(t, tx, ana.ID, "TX0002")
			return nil
		})
		require.NoError(t, err)

		_, err = s.Vehicles().GetVehicleByPlate(ctx, "TX0002")
		require.NoError(t, err)
	})

	t.Run("no nesting", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}
