package domain

import "time"

// MaintenanceRecord is one service event in a vehicle's log. WorkshopID is
// set when the record came through a workshop submission.
type MaintenanceRecord struct {
	ID          string
	VehicleID   string
	WorkshopID  string
	Type        string
	PerformedAt time.Time
	Mileage     int64 // km
	Description string
	CostCents   int64
	NextDueAt   *time.Time
	InvoicePath string // relative to the uploads dir, may be empty
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkshopSubmission is what a workshop fills in on the QR form. It has no
// vehicle field: the vehicle always comes from the validated access code.
type WorkshopSubmission struct {
	Type          string
	PerformedAt   time.Time
	Mileage       int64
	Description   string
	CostCents     int64
	NextDueAt     *time.Time
	WorkshopTaxID string
	WorkshopName  string
}
