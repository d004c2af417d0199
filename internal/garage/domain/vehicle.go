package domain

import "time"

type Vehicle struct {
	ID        string
	OwnerID   string
	Plate     string // unique across all owners, upper-case
	Make      string
	Model     string
	Year      int
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
