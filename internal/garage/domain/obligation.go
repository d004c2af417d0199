package domain

import "time"

// Obligation is a legal document tied to a vehicle, such as mandatory
// insurance or a roadworthiness certificate.
type Obligation struct {
	ID           string
	VehicleID    string
	Name         string
	Type         string
	IssuedAt     *time.Time
	RenewalAt    *time.Time
	DocumentPath string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Current reports whether the obligation has no renewal date in the past.
func (o Obligation) Current(today time.Time) bool {
	if o.RenewalAt == nil {
		return false
	}
	return !o.RenewalAt.Before(Day(today))
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
