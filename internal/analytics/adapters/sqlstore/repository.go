package sqlstore

import (
	"context"
	"fmt"
	"math"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/analytics/core/ports"
	"link-analytics-service/internal/platform/sqldb"
)

type RowScanner = sqldb.Rows

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ClickReader struct {
	db DB
}

func NewClickReader(db DB) *ClickReader {
	return &ClickReader{db: db}
}

var _ ports.ClickReaderPort = (*ClickReader)(nil)

// created_at is stored as unix milliseconds.
const listClicksSQL = `
SELECT
    created_at,
    continent,
    country,
    state,
    city,
    device,
    browser,
    os
FROM clicks
WHERE short_code = $1 AND created_at > $2
ORDER BY created_at`

func (r *ClickReader) ListClicks(ctx context.Context, f ports.ClickFilter) ([]domain.ClickEvent, error) {
	since := int64(math.MinInt64)
	if !f.Since.IsZero() {
		since = f.Since.UnixMilli()
	}

	rows, err := r.db.QueryContext(ctx, listClicksSQL, f.ShortCode, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clicks := make([]domain.ClickEvent, 0)
	for rows.Next() {
		var createdAt int64
		var e domain.ClickEvent
		if err := rows.Scan(
			&createdAt,
			&e.Continent,
			&e.Country,
			&e.State,
			&e.City,
			&e.Device,
			&e.Browser,
			&e.OS,
		); err != nil {
			return nil, fmt.Errorf("scan click: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		clicks = append(clicks, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clicks, nil
}
