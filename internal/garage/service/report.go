package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
)

type ReportService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Generate builds a per-vehicle report of the owner's fleet. Text filters
// match case-insensitive substrings. When a maintenance or obligation filter
// is set, vehicles with nothing matching it are left out.
func (s *ReportService) Generate(ctx context.Context, ownerID string, f domain.ReportFilter) ([]domain.VehicleReport, error) {
	vehicles, err := s.Store.Vehicles().ListVehiclesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.Maintenance().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	obligations, err := s.Store.Obligations().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	maintFiltered := f.MaintenanceType != "" || f.From != nil || f.To != nil
	oblFiltered := f.ObligationCurrent != nil

	byVehicle := make(map[string]*domain.VehicleReport, len(vehicles))
	out := make([]*domain.VehicleReport, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Plate != "" && !containsFold(v.Plate, f.Plate) {
			continue
		}
		if f.Make != "" && !containsFold(v.Make, f.Make) {
			continue
		}
		r := &domain.VehicleReport{
			Vehicle:     v,
			Maintenance: []domain.MaintenanceRecord{},
			Obligations: []domain.ReportObligation{},
		}
		byVehicle[v.ID] = r
		out = append(out, r)
	}

	for _, m := range records {
		r, ok := byVehicle[m.VehicleID]
		if !ok {
			continue
		}
		if f.MaintenanceType != "" && !containsFold(m.Type, f.MaintenanceType) {
			continue
		}
		if f.From != nil && m.PerformedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && m.PerformedAt.After(*f.To) {
			continue
		}
		r.Maintenance = append(r.Maintenance, m)
	}

	for _, o := range obligations {
		r, ok := byVehicle[o.VehicleID]
		if !ok {
			continue
		}
		current := o.Current(today)
		if oblFiltered && (o.RenewalAt == nil || current != *f.ObligationCurrent) {
			continue
		}
		r.Obligations = append(r.Obligations, domain.ReportObligation{Obligation: o, Current: current})
	}

	reports := make([]domain.VehicleReport, 0, len(out))
	for _, r := range out {
		if maintFiltered && len(r.Maintenance) == 0 {
			continue
		}
		if oblFiltered && len(r.Obligations) == 0 {
			continue
		}
		reports = append(reports, *r)
	}
	return reports, nil
}
