package catalog

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/source"

	"go.uber.org/zap"
)

// Extractor fetches the full source collection via offset pagination.
type Extractor struct {
	client    source.Client
	pageSize  int
	pageDelay time.Duration
	logger    *zap.Logger
}

// NewExtractor creates an extractor over the given source client.
func NewExtractor(client source.Client, cfg source.Config, logger *zap.Logger) *Extractor {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 30
	}

	return &Extractor{
		client:    client,
		pageSize:  pageSize,
		pageDelay: time.Duration(cfg.PageDelayMs) * time.Millisecond,
		logger:    logger,
	}
}

// ExtractAll collects every record the source will hand out. A failure on
// the very first page means the source is unreachable and is fatal; a
// failure on any later page stops extraction early and returns what was
// already collected, so fetched data is never thrown away.
func (e *Extractor) ExtractAll(ctx context.Context) ([]source.RawProduct, error) {
	collected := []source.RawProduct{}
	skip := 0

	e.logger.Info("starting extraction", zap.Int("page_size", e.pageSize))

	for {
		page, err := e.client.FetchPage(ctx, e.pageSize, skip)
		if err != nil {
			if skip == 0 {
				return nil, fmt.Errorf("%w: first page fetch: %v", source.ErrSourceUnavailable, err)
			}
			e.logger.Warn("page fetch failed, stopping extraction early",
				zap.Int("skip", skip),
				zap.Int("collected", len(collected)),
				zap.Error(err))
			break
		}

		collected = append(collected, page.Products...)

		e.logger.Info("collected page",
			zap.Int("collected", len(collected)),
			zap.Int("total", page.Total))

		// The reported total is authoritative only when no short page
		// occurs first: a short page always means end of data.
		if len(collected) >= page.Total || len(page.Products) < e.pageSize {
			break
		}

		skip += e.pageSize

		if e.pageDelay > 0 {
			select {
			case <-ctx.Done():
				e.logger.Warn("extraction cancelled", zap.Int("collected", len(collected)))
				return collected, nil
			case <-time.After(e.pageDelay):
			}
		}
	}

	e.logger.Info("extraction complete", zap.Int("total_collected", len(collected)))
	return collected, nil
}
