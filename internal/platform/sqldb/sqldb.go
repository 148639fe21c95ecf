// Package sqldb adapts *sql.DB to the small query interfaces the store
// adapters depend on, so those adapters can be tested with fakes.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Execer runs a statement; both *sql.DB and *sql.Tx implement it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Rows is the part of *sql.Rows the adapters use.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// rows releases the query's timeout once they are closed.
type rows struct {
	*sql.Rows
	cancel context.CancelFunc
}

func (r *rows) Close() error {
	err := r.Rows.Close()
	r.cancel()
	return err
}

type DB struct {
	db      *sql.DB
	timeout time.Duration
}

// New wraps db. A positive timeout bounds each statement; for queries it
// covers row iteration too.
func New(db *sql.DB, timeout time.Duration) *DB {
	return &DB{db: db, timeout: timeout}
}

func (s *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

func (s *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.ExecContext(ctx, query, args...)
}

func (s *DB) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	ctx, cancel := s.withTimeout(ctx)

	r, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return &rows{Rows: r, cancel: cancel}, nil
}

// InTx runs fn inside a transaction, committing when fn returns nil.
func (s *DB) InTx(ctx context.Context, fn func(tx Execer) error) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
