package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Sub-repositories are reached
// through methods so a transaction exposes exactly the same surface and
// nested transactions cannot be started by accident.
type Store interface {
	Owners() Owners
	Vehicles() Vehicles
	Maintenance() Maintenance
	Obligations() Obligations
	Workshops() Workshops

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	// Inside fn only the repositories of tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Owners interface {
	GetOwnerByID(ctx context.Context, id string) (domain.Owner, error)
	GetOwnerByEmail(ctx context.Context, email string) (domain.Owner, error)
	GetOwnerByNationalID(ctx context.Context, nationalID string) (domain.Owner, error)

	// ListOwnerIDs returns every owner ID, oldest first.
	ListOwnerIDs(ctx context.Context) ([]string, error)

	CreateOwner(ctx context.Context, o domain.Owner) error

	// UpdateOwner writes profile fields and the password hash.
	UpdateOwner(ctx context.Context, o domain.Owner) error

	// SetTOTPSecret stores a pending secret without enabling it.
	SetTOTPSecret(ctx context.Context, ownerID, secret string) error
	EnableTOTP(ctx context.Context, ownerID string) error
	// DisableTOTP clears the secret and the enabled flag.
	DisableTOTP(ctx context.Context, ownerID string) error

	// DeleteOwner cascades to vehicles and everything attached to them.
	DeleteOwner(ctx context.Context, id string) error
}

type Vehicles interface {
	CreateVehicle(ctx context.Context, v domain.Vehicle) error
	GetVehicleByID(ctx context.Context, id string) (domain.Vehicle, error)

	// GetVehicleByPlate looks across all owners.
	GetVehicleByPlate(ctx context.Context, plate string) (domain.Vehicle, error)

	// GetVehicleOwnedBy returns ErrNotFound when the vehicle is missing or
	// belongs to someone else.
	GetVehicleOwnedBy(ctx context.Context, vehicleID, ownerID string) (domain.Vehicle, error)

	ListVehiclesByOwner(ctx context.Context, ownerID string) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
}

type Maintenance interface {
	CreateRecord(ctx context.Context, m domain.MaintenanceRecord) error
	GetRecord(ctx context.Context, id string) (domain.MaintenanceRecord, error)

	// ListByVehicle orders by PerformedAt, newest first.
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error)
	// ListByOwner spans all of the owner's vehicles.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.MaintenanceRecord, error)

	UpdateRecord(ctx context.Context, m domain.MaintenanceRecord) error
	DeleteRecord(ctx context.Context, id string) error
}

type Obligations interface {
	CreateObligation(ctx context.Context, o domain.Obligation) error
	GetObligation(ctx context.Context, id string) (domain.Obligation, error)

	// ListByVehicle orders by RenewalAt ascending, undated last.
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Obligation, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Obligation, error)

	UpdateObligation(ctx context.Context, o domain.Obligation) error
	DeleteObligation(ctx context.Context, id string) error
}

type Workshops interface {
	CreateWorkshop(ctx context.Context, w domain.Workshop) error
	GetWorkshopByID(ctx context.Context, id string) (domain.Workshop, error)
	GetWorkshopByTaxID(ctx context.Context, taxID string) (domain.Workshop, error)
}
