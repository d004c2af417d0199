package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/garage/internal/garage/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer Store owns the database.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error { return sql.ErrTxDone }

func (t *txStore) Owners() store.Owners           { return &ownersRepo{db: t.tx} }
func (t *txStore) Vehicles() store.Vehicles       { return &vehiclesRepo{db: t.tx} }
func (t *txStore) Maintenance() store.Maintenance { return &maintenanceRepo{db: t.tx} }
func (t *txStore) Obligations() store.Obligations { return &obligationsRepo{db: t.tx} }
func (t *txStore) Workshops() store.Workshops     { return &workshopsRepo{db: t.tx} }

// ApplyMigrations must run before any transaction is opened.
func (t *txStore) ApplyMigrations() error { return nil }
