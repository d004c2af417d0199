package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

type workshopsRepo struct {
	db dbtx
}

const workshopColumns = `id, tax_id, name, address, phone, email, created_at`

func scanWorkshop(row *sql.Row) (domain.Workshop, error) {
	var (
		w                     domain.Workshop
		address, phone, email sql.NullString
	)
	if err := row.Scan(&w.ID, &w.TaxID, &w.Name, &address, &phone, &email, &w.CreatedAt); err != nil {
		return domain.Workshop{}, mapNotFound(err)
	}
	w.Address = mapNullString(address)
	w.Phone = mapNullString(phone)
	w.Email = mapNullString(email)
	w.CreatedAt = utc(w.CreatedAt)
	return w, nil
}

func (r *workshopsRepo) CreateWorkshop(ctx context.Context, w domain.Workshop) error {
	const q = `
		INSERT INTO workshops (id, tax_id, name, address, phone, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, q,
		w.ID, w.TaxID, w.Name, mapStringNull(w.Address), mapStringNull(w.Phone),
		mapStringNull(w.Email), utc(w.CreatedAt),
	)
	return mapWriteErr(err)
}

func (r *workshopsRepo) GetWorkshopByID(ctx context.Context, id string) (domain.Workshop, error) {
	const q = `SELECT ` + workshopColumns + ` FROM workshops WHERE id = ?`
	return scanWorkshop(r.db.QueryRowContext(ctx, q, id))
}

func (r *workshopsRepo) GetWorkshopByTaxID(ctx context.Context, taxID string) (domain.Workshop, error) {
	const q = `SELECT ` + workshopColumns + ` FROM workshops WHERE tax_id = ?`
	return scanWorkshop(r.db.QueryRowContext(ctx, q, taxID))
}
