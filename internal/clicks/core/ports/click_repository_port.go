package ports

import (
	"context"

	"link-analytics-service/internal/clicks/core/domain"
)

type ClickRepositoryPort interface {
	// InsertClick:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate click_id (idempotent)
	//   created = false, err != nil -> DB error
	InsertClick(ctx context.Context, c *domain.Click) (created bool, err error)
}
