// Package pgsql contains the PostgreSQL implementations of the repository
// ports, built on pgx connection pools.
package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// baseRepository provides database transaction management shared by the
// repositories that need multi-statement atomicity.
type baseRepository struct {
	pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *baseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits the given transaction.
func (r *baseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the given transaction. Calling it after a successful
// commit is a no-op.
func (r *baseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
