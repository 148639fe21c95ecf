package ports

import (
	"context"

	"link-analytics-service/internal/links/core/domain"
)

type LinkRepositoryPort interface {
	// InsertLink reports false when the short code is already taken.
	InsertLink(ctx context.Context, l *domain.Link) (created bool, err error)
	FindLink(ctx context.Context, shortCode string) (link domain.Link, found bool, err error)
	// RenameLink moves the link and its clicks to a new short code.
	RenameLink(ctx context.Context, from, to string) (renamed bool, err error)
	// DeleteLink removes the link together with its clicks.
	DeleteLink(ctx context.Context, shortCode string) (deleted bool, err error)
}
