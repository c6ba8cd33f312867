package feed_usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"unmute/domain"
	"unmute/utils/logger"
)

// SourceFetcher implements one feed mode by composing partition queries.
type SourceFetcher interface {
	Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error)
}

type kindQuery func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error)

// fanOutDegradable runs one query per kind concurrently. A failing kind
// degrades to an empty list and must not cancel or block the others; the
// join waits for every sub-query. The second return value is the number of
// kinds that failed, so callers can detect total failure.
func fanOutDegradable(ctx context.Context, kinds []domain.ContentKind, query kindQuery) ([][]*domain.ContentItem, int) {
	lists := make([][]*domain.ContentItem, len(kinds))
	failures := make([]bool, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(slot int, kind domain.ContentKind) {
			defer wg.Done()

			items, err := query(ctx, kind)
			if err != nil {
				logger.SafeWarnContext(ctx, "partition sub-query degraded to empty",
					"kind", kind,
					"error", err,
				)
				failures[slot] = true
				return
			}
			lists[slot] = items
		}(i, kind)
	}
	wg.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	return lists, failed
}

// fanOutAllOrNothing runs one query per kind concurrently and fails as a
// whole if any kind fails. Used by the trending optimized path, where a
// partial engagement ranking is considered misleading.
func fanOutAllOrNothing(ctx context.Context, kinds []domain.ContentKind, query kindQuery) ([][]*domain.ContentItem, error) {
	lists := make([][]*domain.ContentItem, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			items, err := query(gctx, kind)
			if err != nil {
				return err
			}
			lists[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// allFailed reports whether every kind in a degradable fan-out failed.
func allFailed(kinds []domain.ContentKind, failed int) bool {
	return failed == len(kinds) && len(kinds) > 0
}
