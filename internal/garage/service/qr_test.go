package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/stretchr/testify/require"
)

func TestSubmissionURL(t *testing.T) {
	t.Parallel()

	got, err := SubmissionURL("https://garage.test/v1/maintenance/", "ABCD-EFGH")
	require.NoError(t, err)
	require.Equal(t, "https://garage.test/v1/maintenance/workshop-submit?token=ABCD-EFGH", got)

	_, err = SubmissionURL("://bad", "ABCD-EFGH")
	require.Error(t, err)
}

func TestIssueMaintenanceQR(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	alice := f.owner(t, "alice@example.com")
	bob := f.owner(t, "bob@example.com")
	v := f.vehicle(t, alice.ID, "QR0001")

	t.Run("ownership denied issues nothing", func(t *testing.T) {
		before := f.tokens.Store().Len()

		_, err := f.qr.IssueMaintenanceQR(ctx, bob.ID, v.ID)
		require.ErrorIs(t, err, ErrOwnershipDenied)

		_, err = f.qr.IssueMaintenanceQR(ctx, alice.ID, "no-such-vehicle")
		require.ErrorIs(t, err, ErrOwnershipDenied)

		require.Equal(t, before, f.tokens.Store().Len())
	})

	t.Run("grant", func(t *testing.T) {
		g, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
		require.NoError(t, err)
		require.Regexp(t, `^[A-Z2-9]{4}-[A-Z2-9]{4}$`, g.Code)
		require.NotEmpty(t, g.Image)
		require.Contains(t, g.ImageDataURL, "data:image/png;base64,")
		require.Equal(t, 120*time.Minute, g.TTL)
		require.Equal(t, f.clock.Now().Add(g.TTL), g.ExpiresAt)

		u, err := url.Parse(g.SubmissionURL)
		require.NoError(t, err)
		require.Equal(t, "/v1/maintenance/workshop-submit", u.Path)
		require.Equal(t, g.Code, u.Query().Get("token"))

		tok, ok := f.tokens.Validate(g.Code)
		require.True(t, ok)
		require.Equal(t, v.ID, tok.ResourceID)
	})

	t.Run("independent tokens per issuance", func(t *testing.T) {
		a, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
		require.NoError(t, err)
		b, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
		require.NoError(t, err)
		require.NotEqual(t, a.Code, b.Code)

		_, ok := f.tokens.Validate(a.Code)
		require.True(t, ok)
		_, ok = f.tokens.Validate(b.Code)
		require.True(t, ok)
	})

	t.Run("older code expires while newer stays open", func(t *testing.T) {
		first, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
		require.NoError(t, err)
		f.clock.Advance(30 * time.Minute)
		second, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
		require.NoError(t, err)

		f.clock.Advance(91 * time.Minute)

		_, err = f.workshop.OpenForm(ctx, first.Code)
		require.ErrorIs(t, err, ErrTokenInvalid)

		tok, err := f.workshop.OpenForm(ctx, second.Code)
		require.NoError(t, err)
		require.Equal(t, v.ID, tok.ResourceID)
	})
}

func TestWorkshopSubmission(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	alice := f.owner(t, "alice@example.com")
	v := f.vehicle(t, alice.ID, "WS0001")
	other := f.vehicle(t, alice.ID, "WS0002")

	grant, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
	require.NoError(t, err)

	sub := domain.WorkshopSubmission{
		Type:          "timing belt",
		PerformedAt:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Mileage:       90000,
		CostCents:     55000,
		WorkshopTaxID: "900123456",
		WorkshopName:  "Fast Fix",
	}

	t.Run("missing code", func(t *testing.T) {
		_, err := f.workshop.OpenForm(ctx, "")
		require.ErrorIs(t, err, ErrTokenMissing)
		_, err = f.workshop.Submit(ctx, "", sub, nil)
		require.ErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := f.workshop.OpenForm(ctx, "ZZZZ-ZZZZ")
		require.ErrorIs(t, err, ErrTokenInvalid)
		_, err = f.workshop.Submit(ctx, "ZZZZ-ZZZZ", sub, nil)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("records against the code's vehicle", func(t *testing.T) {
		tok, err := f.workshop.OpenForm(ctx, grant.Code)
		require.NoError(t, err)
		require.Equal(t, v.ID, tok.ResourceID)

		rec, err := f.workshop.Submit(ctx, grant.Code, sub, pdfUpload())
		require.NoError(t, err)
		require.Equal(t, v.ID, rec.VehicleID)
		require.NotEmpty(t, rec.WorkshopID)
		require.NotEmpty(t, rec.InvoicePath)

		w, err := f.store.Workshops().GetWorkshopByTaxID(ctx, "900123456")
		require.NoError(t, err)
		require.Equal(t, "Fast Fix", w.Name)
		require.Equal(t, w.ID, rec.WorkshopID)

		list, err := f.maintenance.ListForVehicle(ctx, alice.ID, other.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("code is reusable and workshop reused", func(t *testing.T) {
		rec, err := f.workshop.Submit(ctx, grant.Code, sub, nil)
		require.NoError(t, err)

		first, err := f.store.Workshops().GetWorkshopByTaxID(ctx, "900123456")
		require.NoError(t, err)
		require.Equal(t, first.ID, rec.WorkshopID)

		list, err := f.maintenance.ListForVehicle(ctx, alice.ID, v.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("invalid submission keeps the code", func(t *testing.T) {
		_, err := f.workshop.Submit(ctx, grant.Code, domain.WorkshopSubmission{}, nil)
		require.ErrorIs(t, err, ErrInvalidMaintenance)

		_, ok := f.tokens.Validate(grant.Code)
		require.True(t, ok)
	})

	t.Run("expired code", func(t *testing.T) {
		f.clock.Advance(f.tokens.TTL())

		_, err := f.workshop.Submit(ctx, grant.Code, sub, nil)
		require.ErrorIs(t, err, ErrTokenInvalid)

		_, ok := f.tokens.Store().Get(grant.Code)
		require.False(t, ok)
	})
}

func TestWorkshopSubmissionDeletedVehicle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	alice := f.owner(t, "alice@example.com")
	v := f.vehicle(t, alice.ID, "GONE01")

	grant, err := f.qr.IssueMaintenanceQR(ctx, alice.ID, v.ID)
	require.NoError(t, err)
	require.NoError(t, f.vehicles.DeleteByPlate(ctx, alice.ID, v.Plate))

	_, err = f.workshop.Submit(ctx, grant.Code, domain.WorkshopSubmission{
		Type: "inspection", PerformedAt: time.Now(),
	}, nil)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, ok := f.tokens.Store().Get(grant.Code)
	require.False(t, ok)

	_, err = f.store.Vehicles().GetVehicleByID(ctx, v.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
