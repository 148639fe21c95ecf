package ports

import (
	"context"

	links "link-analytics-service/internal/links/core/domain"
)

// LinkReaderPort resolves a short code to its link.
type LinkReaderPort interface {
	FindLink(ctx context.Context, shortCode string) (link links.Link, found bool, err error)
}
