package ports

import (
	"context"
	"readerscout/internal/core/domain/models"
)

// DocumentSource is the remote reading-list service.
type DocumentSource interface {
	// VerifyToken reports whether the configured key is accepted.
	VerifyToken(ctx context.Context) (bool, error)
	// ListPage fetches one page. An empty cursor requests the first page.
	ListPage(ctx context.Context, filter models.ListFilter, cursor string) (*models.Page, error)
}
