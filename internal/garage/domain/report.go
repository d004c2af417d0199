package domain

import "time"

type ReportFilter struct {
	MaintenanceType   string
	From              *time.Time
	To                *time.Time
	ObligationCurrent *bool
	Plate             string
	Make              string
}

type VehicleReport struct {
	Vehicle     Vehicle
	Maintenance []MaintenanceRecord
	Obligations []ReportObligation
}

type ReportObligation struct {
	Obligation
	Current bool
}

type ReminderKind string

const (
	ReminderObligation  ReminderKind = "obligation"
	ReminderMaintenance ReminderKind = "maintenance"
)

// Reminder is an upcoming renewal or service date.
type Reminder struct {
	Kind      ReminderKind
	OwnerID   string
	VehicleID string
	Plate     string
	SubjectID string // obligation or maintenance record ID
	Title     string
	DueAt     time.Time
}
