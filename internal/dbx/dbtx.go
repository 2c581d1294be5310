// Package dbx lets the Postgres and SQLite repositories run the same way on a
// pooled connection or inside a provisioning transaction.
package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
)

// DBTX is what a users or transfers repository needs from its handle.
// *sql.DB and *sql.Tx both qualify.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction and commits only if fn returns nil.
// Seeding relies on it so a batch of profiles lands whole or not at all.
// Begin and commit failures wrap common.ErrStoreUnavailable; fn's own error
// is returned unchanged.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := provision.Seed(ctx, users.NewSQLiteRepository(tx), names, domain, rng)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", common.ErrStoreUnavailable, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", common.ErrStoreUnavailable, err)
	}
	committed = true
	return nil
}
