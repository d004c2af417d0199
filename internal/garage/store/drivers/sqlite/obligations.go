package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

type obligationsRepo struct {
	db dbtx
}

const obligationColumns = `o.id, o.vehicle_id, o.name, o.type, o.issued_at, o.renewal_at,
	o.document_path, o.created_at, o.updated_at`

func scanObligation(row interface{ Scan(...any) error }) (domain.Obligation, error) {
	var (
		o       domain.Obligation
		issued  sql.NullTime
		renewal sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.VehicleID, &o.Name, &o.Type, &issued, &renewal,
		&o.DocumentPath, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return domain.Obligation{}, mapNotFound(err)
	}
	o.IssuedAt = mapNullTimePtr(issued)
	o.RenewalAt = mapNullTimePtr(renewal)
	o.CreatedAt = utc(o.CreatedAt)
	o.UpdatedAt = utc(o.UpdatedAt)
	return o, nil
}

func (r *obligationsRepo) list(ctx context.Context, q string, args ...any) ([]domain.Obligation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Obligation{}
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *obligationsRepo) CreateObligation(ctx context.Context, o domain.Obligation) error {
	const q = `
		INSERT INTO obligations
			(id, vehicle_id, name, type, issued_at, renewal_at, document_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, q,
		o.ID, o.VehicleID, o.Name, o.Type, mapOptionalTime(o.IssuedAt), mapOptionalTime(o.RenewalAt),
		o.DocumentPath, utc(o.CreatedAt), utc(o.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *obligationsRepo) GetObligation(ctx context.Context, id string) (domain.Obligation, error) {
	const q = `SELECT ` + obligationColumns + ` FROM obligations o WHERE o.id = ?`
	return scanObligation(r.db.QueryRowContext(ctx, q, id))
}

func (r *obligationsRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Obligation, error) {
	const q = `SELECT ` + obligationColumns + `
		FROM obligations o
		WHERE o.vehicle_id = ?
		ORDER BY o.renewal_at IS NULL, o.renewal_at ASC, o.id`
	return r.list(ctx, q, vehicleID)
}

func (r *obligationsRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Obligation, error) {
	const q = `SELECT ` + obligationColumns + `
		FROM obligations o
		JOIN vehicles v ON v.id = o.vehicle_id
		WHERE v.owner_id = ?
		ORDER BY o.renewal_at IS NULL, o.renewal_at ASC, o.id`
	return r.list(ctx, q, ownerID)
}

func (r *obligationsRepo) UpdateObligation(ctx context.Context, o domain.Obligation) error {
	const q = `
		UPDATE obligations
		SET name = ?, type = ?, issued_at = ?, renewal_at = ?, document_path = ?, updated_at = ?
		WHERE id = ?
	`
	return expectOne(r.db.ExecContext(ctx, q,
		o.Name, o.Type, mapOptionalTime(o.IssuedAt), mapOptionalTime(o.RenewalAt),
		o.DocumentPath, time.Now().UTC(), o.ID,
	))
}

func (r *obligationsRepo) DeleteObligation(ctx context.Context, id string) error {
	const q = `DELETE FROM obligations WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, id))
}
