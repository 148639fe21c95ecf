package sqlstore

import (
	"context"
	"database/sql"
)

// DB is the subset of *sql.DB the repository needs.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
