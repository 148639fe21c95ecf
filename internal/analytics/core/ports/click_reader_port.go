package ports

import (
	"context"
	"time"

	"link-analytics-service/internal/analytics/core/domain"
)

type ClickFilter struct {
	ShortCode string
	Since     time.Time // exclusive lower bound on created_at; zero = no bound
}

type ClickReaderPort interface {
	ListClicks(ctx context.Context, f ClickFilter) ([]domain.ClickEvent, error)
}
