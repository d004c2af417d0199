package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

type maintenanceRepo struct {
	db dbtx
}

const maintenanceColumns = `m.id, m.vehicle_id, m.workshop_id, m.type, m.performed_at, m.mileage,
	m.description, m.cost_cents, m.next_due_at, m.invoice_path, m.created_at, m.updated_at`

func scanMaintenance(row interface{ Scan(...any) error }) (domain.MaintenanceRecord, error) {
	var (
		m           domain.MaintenanceRecord
		workshopID  sql.NullString
		description sql.NullString
		nextDue     sql.NullTime
		invoice     sql.NullString
	)
	if err := row.Scan(&m.ID, &m.VehicleID, &workshopID, &m.Type, &m.PerformedAt, &m.Mileage,
		&description, &m.CostCents, &nextDue, &invoice, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.MaintenanceRecord{}, mapNotFound(err)
	}
	m.WorkshopID = mapNullString(workshopID)
	m.Description = mapNullString(description)
	m.NextDueAt = mapNullTimePtr(nextDue)
	m.InvoicePath = mapNullString(invoice)
	m.PerformedAt = utc(m.PerformedAt)
	m.CreatedAt = utc(m.CreatedAt)
	m.UpdatedAt = utc(m.UpdatedAt)
	return m, nil
}

func (r *maintenanceRepo) list(ctx context.Context, q string, args ...any) ([]domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MaintenanceRecord{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *maintenanceRepo) CreateRecord(ctx context.Context, m domain.MaintenanceRecord) error {
	const q = `
		INSERT INTO maintenance_records
			(id, vehicle_id, workshop_id, type, performed_at, mileage, description,
			 cost_cents, next_due_at, invoice_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, q,
		m.ID, m.VehicleID, mapStringNull(m.WorkshopID), m.Type, utc(m.PerformedAt), m.Mileage,
		mapStringNull(m.Description), m.CostCents, mapOptionalTime(m.NextDueAt),
		mapStringNull(m.InvoicePath), utc(m.CreatedAt), utc(m.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *maintenanceRepo) GetRecord(ctx context.Context, id string) (domain.MaintenanceRecord, error) {
	const q = `SELECT ` + maintenanceColumns + ` FROM maintenance_records m WHERE m.id = ?`
	return scanMaintenance(r.db.QueryRowContext(ctx, q, id))
}

func (r *maintenanceRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error) {
	const q = `SELECT ` + maintenanceColumns + `
		FROM maintenance_records m
		WHERE m.vehicle_id = ?
		ORDER BY m.performed_at DESC, m.id DESC`
	return r.list(ctx, q, vehicleID)
}

func (r *maintenanceRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.MaintenanceRecord, error) {
	const q = `SELECT ` + maintenanceColumns + `
		FROM maintenance_records m
		JOIN vehicles v ON v.id = m.vehicle_id
		WHERE v.owner_id = ?
		ORDER BY m.performed_at DESC, m.id DESC`
	return r.list(ctx, q, ownerID)
}

func (r *maintenanceRepo) UpdateRecord(ctx context.Context, m domain.MaintenanceRecord) error {
	const q = `
		UPDATE maintenance_records
		SET type = ?, performed_at = ?, mileage = ?, description = ?, cost_cents = ?,
		    next_due_at = ?, invoice_path = ?, updated_at = ?
		WHERE id = ?
	`
	return expectOne(r.db.ExecContext(ctx, q,
		m.Type, utc(m.PerformedAt), m.Mileage, mapStringNull(m.Description), m.CostCents,
		mapOptionalTime(m.NextDueAt), mapStringNull(m.InvoicePath), time.Now().UTC(), m.ID,
	))
}

func (r *maintenanceRepo) DeleteRecord(ctx context.Context, id string) error {
	const q = `DELETE FROM maintenance_records WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, id))
}
