package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
)

type ownersRepo struct {
	db dbtx
}

const ownerColumns = `id, name, national_id, email, phone, password_hash,
	totp_secret, totp_enabled, created_at, updated_at`

func scanOwner(row interface{ Scan(...any) error }) (domain.Owner, error) {
	var (
		o      domain.Owner
		phone  sql.NullString
		secret sql.NullString
	)
	err := row.Scan(&o.ID, &o.Name, &o.NationalID, &o.Email, &phone, &o.PasswordHash,
		&secret, &o.TOTPEnabled, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Owner{}, mapNotFound(err)
	}
	o.Phone = mapNullString(phone)
	o.TOTPSecret = mapNullString(secret)
	o.CreatedAt = utc(o.CreatedAt)
	o.UpdatedAt = utc(o.UpdatedAt)
	return o, nil
}

func (r *ownersRepo) GetOwnerByID(ctx context.Context, id string) (domain.Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE id = ?`
	return scanOwner(r.db.QueryRowContext(ctx, q, id))
}

func (r *ownersRepo) GetOwnerByEmail(ctx context.Context, email string) (domain.Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE email = ?`
	return scanOwner(r.db.QueryRowContext(ctx, q, email))
}

func (r *ownersRepo) GetOwnerByNationalID(ctx context.Context, nationalID string) (domain.Owner, error) {
	const q = `SELECT ` + ownerColumns + ` FROM owners WHERE national_id = ?`
	return scanOwner(r.db.QueryRowContext(ctx, q, nationalID))
}

func (r *ownersRepo) ListOwnerIDs(ctx context.Context) ([]string, error) {
	const q = `SELECT id FROM owners ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ownersRepo) CreateOwner(ctx context.Context, o domain.Owner) error {
	const q = `
		INSERT INTO owners (id, name, national_id, email, phone, password_hash, totp_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, q,
		o.ID, o.Name, o.NationalID, o.Email, mapStringNull(o.Phone), o.PasswordHash,
		utc(o.CreatedAt), utc(o.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *ownersRepo) UpdateOwner(ctx context.Context, o domain.Owner) error {
	const q = `
		UPDATE owners
		SET name = ?, national_id = ?, email = ?, phone = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`
	return expectOne(r.db.ExecContext(ctx, q,
		o.Name, o.NationalID, o.Email, mapStringNull(o.Phone), o.PasswordHash,
		time.Now().UTC(), o.ID,
	))
}

func (r *ownersRepo) SetTOTPSecret(ctx context.Context, ownerID, secret string) error {
	const q = `UPDATE owners SET totp_secret = ?, totp_enabled = 0, updated_at = ? WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, mapStringNull(secret), time.Now().UTC(), ownerID))
}

func (r *ownersRepo) EnableTOTP(ctx context.Context, ownerID string) error {
	const q = `UPDATE owners SET totp_enabled = 1, updated_at = ? WHERE id = ? AND totp_secret IS NOT NULL`
	return expectOne(r.db.ExecContext(ctx, q, time.Now().UTC(), ownerID))
}

func (r *ownersRepo) DisableTOTP(ctx context.Context, ownerID string) error {
	const q = `UPDATE owners SET totp_secret = NULL, totp_enabled = 0, updated_at = ? WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, time.Now().UTC(), ownerID))
}

func (r *ownersRepo) DeleteOwner(ctx context.Context, id string) error {
	const q = `DELETE FROM owners WHERE id = ?`
	return expectOne(r.db.ExecContext(ctx, q, id))
}
