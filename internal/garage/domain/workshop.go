package domain

import "time"

type Workshop struct {
	ID        string
	TaxID     string // NIT or national ID of the shop, unique
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
}
