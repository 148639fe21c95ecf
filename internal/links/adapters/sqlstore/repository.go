package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"link-analytics-service/internal/links/core/domain"
	"link-analytics-service/internal/links/core/ports"
	"link-analytics-service/internal/platform/sqldb"
)

// DB is satisfied by *sqldb.DB.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (sqldb.Rows, error)
	InTx(ctx context.Context, fn func(tx sqldb.Execer) error) error
}

type LinkRepository struct {
	db DB
}

func NewLinkRepository(db DB) *LinkRepository {
	return &LinkRepository{db: db}
}

var _ ports.LinkRepositoryPort = (*LinkRepository)(nil)

const (
	insertLinkSQL = `
INSERT INTO links (short_code, long_url, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (short_code) DO NOTHING`

	findLinkSQL = `
SELECT short_code, long_url, created_at
FROM links
WHERE short_code = $1`

	renameLinkSQL   = `UPDATE links SET short_code = $1 WHERE short_code = $2`
	renameClicksSQL = `UPDATE clicks SET short_code = $1 WHERE short_code = $2`

	deleteLinkSQL   = `DELETE FROM links WHERE short_code = $1`
	deleteClicksSQL = `DELETE FROM clicks WHERE short_code = $1`
)

// errNoRows aborts a transaction whose first statement matched nothing.
var errNoRows = errors.New("no rows")

func (r *LinkRepository) InsertLink(ctx context.Context, l *domain.Link) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertLinkSQL,
		l.ShortCode,
		l.LongURL,
		l.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return false, fmt.Errorf("insert link: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *LinkRepository) FindLink(ctx context.Context, shortCode string) (domain.Link, bool, error) {
	rows, err := r.db.QueryContext(ctx, findLinkSQL, shortCode)
	if err != nil {
		return domain.Link{}, false, fmt.Errorf("find link: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Link{}, false, fmt.Errorf("find link: %w", err)
		}
		return domain.Link{}, false, nil
	}

	var (
		l         domain.Link
		createdAt int64
	)
	if err := rows.Scan(&l.ShortCode, &l.LongURL, &createdAt); err != nil {
		return domain.Link{}, false, fmt.Errorf("scan link: %w", err)
	}
	l.CreatedAt = time.UnixMilli(createdAt).UTC()

	return l, true, nil
}

func (r *LinkRepository) RenameLink(ctx context.Context, from, to string) (bool, error) {
	return r.applyToLinkAndClicks(ctx, "rename link",
		func(tx sqldb.Execer) (sql.Result, error) {
			return tx.ExecContext(ctx, renameLinkSQL, to, from)
		},
		func(tx sqldb.Execer) error {
			_, err := tx.ExecContext(ctx, renameClicksSQL, to, from)
			return err
		},
	)
}

func (r *LinkRepository) DeleteLink(ctx context.Context, shortCode string) (bool, error) {
	return r.applyToLinkAndClicks(ctx, "delete link",
		func(tx sqldb.Execer) (sql.Result, error) {
			return tx.ExecContext(ctx, deleteLinkSQL, shortCode)
		},
		func(tx sqldb.Execer) error {
			_, err := tx.ExecContext(ctx, deleteClicksSQL, shortCode)
			return err
		},
	)
}

// applyToLinkAndClicks runs the links statement and then the clicks statement
// in one transaction. It reports false, touching nothing, when the link does
// not exist.
func (r *LinkRepository) applyToLinkAndClicks(
	ctx context.Context,
	op string,
	linkStmt func(tx sqldb.Execer) (sql.Result, error),
	clicksStmt func(tx sqldb.Execer) error,
) (bool, error) {
	err := r.db.InTx(ctx, func(tx sqldb.Execer) error {
		res, err := linkStmt(tx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return errNoRows
		}
		return clicksStmt(tx)
	})

	switch {
	case errors.Is(err, errNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", op, err)
	default:
		return true, nil
	}
}
