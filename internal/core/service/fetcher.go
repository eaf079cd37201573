package service

import (
	"context"
	"fmt"
	"readerscout/internal/core/domain/models"
	"readerscout/internal/core/domain/ports"

	"github.com/rs/zerolog"
)

// Fetcher walks the cursor-paginated list endpoint.
type Fetcher struct {
	src ports.DocumentSource
	log zerolog.Logger
}

func NewFetcher(src ports.DocumentSource, log zerolog.Logger) *Fetcher {
	return &Fetcher{src: src, log: log}
}

// Fetch collects documents page by page until the server stops returning a
// cursor or opts.Limit documents have been gathered. The limit is checked
// only after a whole page has been appended, so the last page may be
// partially discarded. Any failure discards everything fetched so far.
func (f *Fetcher) Fetch(ctx context.Context, opts models.FetchOptions) ([]models.Document, error) {
	var (
		all    []models.Document
		cursor string
	)

	for pageNum := 1; ; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := f.src.ListPage(ctx, opts.ListFilter, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", pageNum, err)
		}
		all = append(all, page.Results...)

		f.log.Debug().
			Int("page", pageNum).
			Int("items", len(page.Results)).
			Int("total", len(all)).
			Bool("has_next", page.NextPageCursor != "").
			Msg("Fetched page")

		if opts.Limit > 0 && len(all) >= opts.Limit {
			return all[:opts.Limit], nil
		}

		if page.NextPageCursor == "" {
			return all, nil
		}
		cursor = page.NextPageCursor
	}
}
