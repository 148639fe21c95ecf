package sqlstore

import (
	"context"
	"fmt"

	analytics "link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/clicks/core/domain"
	"link-analytics-service/internal/clicks/core/ports"
)

type ClickRepository struct {
	db DB
}

func NewClickRepository(db DB) *ClickRepository {
	return &ClickRepository{db: db}
}

var _ ports.ClickRepositoryPort = (*ClickRepository)(nil)

const insertClickSQL = `
INSERT INTO clicks (
    click_id,
    short_code,
    created_at,
    continent,
    country,
    state,
    city,
    device,
    browser,
    os
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9, $10
)
ON CONFLICT (click_id) DO NOTHING`

func (r *ClickRepository) InsertClick(ctx context.Context, c *domain.Click) (bool, error) {
	e := c.Event

	res, err := r.db.ExecContext(ctx, insertClickSQL,
		c.ClickID,
		c.ShortCode,
		e.CreatedAt.UnixMilli(),
		nullable(e.Continent),
		nullable(e.Country),
		nullable(e.State),
		nullable(e.City),
		nullable(e.Device),
		nullable(e.Browser),
		nullable(e.OS),
	)
	if err != nil {
		return false, fmt.Errorf("insert click: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

// nullable stores an absent attribute as NULL.
func nullable(a analytics.Attr) any {
	if !a.Valid {
		return nil
	}
	return a.String
}
