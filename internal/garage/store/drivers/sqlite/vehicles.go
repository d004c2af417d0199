package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

type vehiclesRepo struct {
	db dbtx
}

const vehicleColumns = `id, owner_id, plate, make, model, year, color, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (domain.Vehicle, error) {
	var (
		v     domain.Vehicle
		color sql.NullString
	)
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Plate, &v.Make, &v.Model, &v.Year, &color,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	v.Color = mapNullString(color)
	v.CreatedAt = utc(v.CreatedAt)
	v.UpdatedAt = utc(v.UpdatedAt)
	return v, nil
}

func (r *vehiclesRepo) CreateVehicle(ctx context.Context, v domain.Vehicle) error {
	const q = `
		INSERT INTO vehicles (id, owner_id, plate, make, model, year, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, q,
		v.ID, v.OwnerID, v.Plate, v.Make, v.Model, v.Year, mapStringNull(v.Color),
		utc(v.CreatedAt), utc(v.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *vehiclesRepo) GetVehicleByID(ctx context.Context, id string) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ?`
	return scanVehicle(r.db.QueryRowContext(ctx, q, id))
}

func (r *vehiclesRepo) GetVehicleByPlate(ctx context.Context, plate string) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = ?`
	return scanVehicle(r.db.QueryRowContext(ctx, q, plate))
}

func (r *vehiclesRepo) GetVehicleOwnedBy(ctx context.Context, vehicleID, ownerID string) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ? AND owner_id = ?`
	return scanVehicle(r.db.QueryRowContext(ctx, q, vehicleID, ownerID))
}

func (r *vehiclesRepo) ListVehiclesByOwner(ctx context.Context, ownerID string) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = ? ORDER BY plate`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *vehiclesRepo) UpdateVehicle(ctx context.Context, v domain.Vehicle) error {
	const q = `
		UPDATE vehicles
		SET plate = ?, make = ?, model = ?, year = ?, color = ?, updated_at = ?
		WHERE id = ?
	`
	return expectOne(r.db.ExecContext(ctx, q,
		v.Plate, v.Make, v.Model, v.Year, mapStringNull(v.Color), time.Now().UTC(), v.ID,
	))
}

func (r *vehiclesRepo) DeleteVehicle(ctx context.Context, id string) error {
	const q = `DELETE FROM vehicles WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, id))
}
