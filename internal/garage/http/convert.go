package http

import (
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
)

func toOwnerResponse(o domain.Owner) garagesdk.OwnerResponse {
	return garagesdk.OwnerResponse{
		ID:          o.ID,
		Name:        o.Name,
		NationalID:  o.NationalID,
		Email:       o.Email,
		Phone:       o.Phone,
		TOTPEnabled: o.TOTPEnabled,
		CreatedAt:   o.CreatedAt,
	}
}

func toVehicleResponse(v domain.Vehicle) garagesdk.VehicleResponse {
	return garagesdk.VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toVehicleResponses(vs []domain.Vehicle) []garagesdk.VehicleResponse {
	out := make([]garagesdk.VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

func toMaintenanceResponse(m domain.MaintenanceRecord) garagesdk.MaintenanceResponse {
	return garagesdk.MaintenanceResponse{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		WorkshopID:  m.WorkshopID,
		Type:        m.Type,
		PerformedAt: m.PerformedAt,
		Mileage:     m.Mileage,
		Description: m.Description,
		CostCents:   m.CostCents,
		NextDueAt:   m.NextDueAt,
		HasInvoice:  m.InvoicePath != "",
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMaintenanceResponses(ms []domain.MaintenanceRecord) []garagesdk.MaintenanceResponse {
	out := make([]garagesdk.MaintenanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMaintenanceResponse(m))
	}
	return out
}

func toObligationResponse(o domain.Obligation, today time.Time) garagesdk.ObligationResponse {
	return garagesdk.ObligationResponse{
		ID:          o.ID,
		VehicleID:   o.VehicleID,
		Name:        o.Name,
		Type:        o.Type,
		IssuedAt:    o.IssuedAt,
		RenewalAt:   o.RenewalAt,
		Current:     o.Current(today),
		HasDocument: o.DocumentPath != "",
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func toObligationResponses(obs []domain.Obligation, today time.Time) []garagesdk.ObligationResponse {
	out := make([]garagesdk.ObligationResponse, 0, len(obs))
	for _, o := range obs {
		out = append(out, toObligationResponse(o, today))
	}
	return out
}

func toReportResponse(rs []domain.VehicleReport) garagesdk.ReportResponse {
	out := garagesdk.ReportResponse{Vehicles: make([]garagesdk.VehicleReportResponse, 0, len(rs))}
	for _, r := range rs {
		obligations := make([]garagesdk.ObligationResponse, 0, len(r.Obligations))
		for _, o := range r.Obligations {
			resp := toObligationResponse(o.Obligation, time.Time{})
			resp.Current = o.Current
			obligations = append(obligations, resp)
		}
		out.Vehicles = append(out.Vehicles, garagesdk.VehicleReportResponse{
			Vehicle:     toVehicleResponse(r.Vehicle),
			Maintenance: toMaintenanceResponses(r.Maintenance),
			Obligations: obligations,
		})
	}
	return out
}

func toReminderResponses(rs []domain.Reminder) []garagesdk.ReminderResponse {
	out := make([]garagesdk.ReminderResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, garagesdk.ReminderResponse{
			Kind:      string(r.Kind),
			VehicleID: r.VehicleID,
			Plate:     r.Plate,
			SubjectID: r.SubjectID,
			Title:     r.Title,
			DueAt:     r.DueAt,
		})
	}
	return out
}
