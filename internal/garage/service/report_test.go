package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	f.reports.Now = func() time.Time { return today }

	alice := f.owner(t, "alice@example.com")
	bob := f.owner(t, "bob@example.com")

	corolla := f.vehicle(t, alice.ID, "AAA111")
	mazda, err := f.vehicles.Register(ctx, alice.ID, VehicleInput{Plate: "BBB222", Make: "Mazda", Model: "3", Year: 2020})
	require.NoError(t, err)
	f.vehicle(t, bob.ID, "CCC333")

	_, err = f.maintenance.Create(ctx, alice.ID, corolla.ID, MaintenanceInput{
		Type: "Oil change", PerformedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)
	_, err = f.maintenance.Create(ctx, alice.ID, mazda.ID, MaintenanceInput{
		Type: "Brakes", PerformedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	require.NoError(t, err)

	_, err = f.obligations.Create(ctx, alice.ID, corolla.ID, ObligationInput{
		Name: "Insurance", Type: "insurance", RenewalAt: ptr(today.AddDate(0, 3, 0)),
	}, pdfUpload())
	require.NoError(t, err)
	_, err = f.obligations.Create(ctx, alice.ID, mazda.ID, ObligationInput{
		Name: "Inspection", Type: "inspection", RenewalAt: ptr(today.AddDate(0, -1, 0)),
	}, pdfUpload())
	require.NoError(t, err)

	plates := func(rs []domain.VehicleReport) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.Vehicle.Plate)
		}
		return out
	}

	t.Run("unfiltered covers only own fleet", func(t *testing.T) {
		rs, err := f.reports.Generate(ctx, alice.ID, domain.ReportFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{"AAA111", "BBB222"}, plates(rs))
		require.Len(t, rs[0].Maintenance, 1)
		require.Len(t, rs[0].Obligations, 1)
		require.True(t, rs[0].Obligations[0].Current)
		require.False(t, rs[1].Obligations[0].Current)
	})

	t.Run("maintenance type", func(t *testing.T) {
		rs, err := f.reports.Generate(ctx, alice.ID, domain.ReportFilter{MaintenanceType: "oil"})
		require.NoError(t, err)
		require.Equal(t, []string{"AAA111"}, plates(rs))
	})

	t.Run("date range", func(t *testing.T) {
		from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		rs, err := f.reports.Generate(ctx, alice.ID, domain.ReportFilter{From: &from})
		require.NoError(t, err)
		require.Equal(t, []string{"BBB222"}, plates(rs))
	})

	t.Run("obligation status", func(t *testing.T) {
		rs, err := f.reports.Generate(ctx, alice.ID, domain.ReportFilter{ObligationCurrent: ptr(false)})
		require.NoError(t, err)
		require.Equal(t, []string{"BBB222"}, plates(rs))

		rs, err = f.reports.Generate(ctx, alice.ID, domain.ReportFilter{ObligationCurrent: ptr(true)})
		require.NoError(t, err)
		require.Equal(t, []string{"AAA111"}, plates(rs))
	})

	t.Run("plate and make", func(t *testing.T) {
		rs, err := f.reports.Generate(ctx, alice.ID, domain.ReportFilter{Make: "mazda"})
		require.NoError(t, err)
		require.Equal(t, []string{"BBB222"}, plates(rs))

		rs, err = f.reports.Generate(ctx, alice.ID, domain.ReportFilter{Plate: "aaa"})
		require.NoError(t, err)
		require.Equal(t, []string{"AAA111"}, plates(rs))
	})
}
