package feed_usecase

import (
	"context"
	"fmt"

	"unmute/domain"
	"unmute/port/content_partition_port"
	"unmute/utils/errors"
)

// TrendingFetcher ranks content by popularity. The optimized path asks
// every partition for engagement-annotated items; if any single kind fails
// the whole path is abandoned and the page is rebuilt from plain recency
// queries, because a partial engagement ranking is considered misleading.
type TrendingFetcher struct {
	partitions content_partition_port.ContentPartitionPort
	cascade    *Cascade
}

func NewTrendingFetcher(partitions content_partition_port.ContentPartitionPort, cascade *Cascade) *TrendingFetcher {
	return &TrendingFetcher{partitions: partitions, cascade: cascade}
}

func (f *TrendingFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	return f.cascade.Run(ctx, "trending_engagement",
		func(ctx context.Context) ([]*domain.ContentItem, error) {
			return f.fetchByEngagement(ctx, limit, offset)
		},
		func(ctx context.Context) ([]*domain.ContentItem, error) {
			return f.fetchByRecency(ctx, limit, offset)
		},
	)
}

func (f *TrendingFetcher) fetchByEngagement(ctx context.Context, limit, offset int) ([]*domain.ContentItem, error) {
	lists, err := fanOutAllOrNothing(ctx, domain.AllContentKinds, func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
		return f.partitions.QueryWithEngagement(ctx, kind, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrEngagementQueryUnavailable, err)
	}

	return truncate(Merge(lists, SortByEngagement), limit), nil
}

func (f *TrendingFetcher) fetchByRecency(ctx context.Context, limit, offset int) ([]*domain.ContentItem, error) {
	lists, failed := fanOutDegradable(ctx, domain.AllContentKinds, func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
		return f.partitions.QueryRecent(ctx, kind, limit, offset)
	})
	if allFailed(domain.AllContentKinds, failed) {
		return nil, errors.ErrTotalFetchFailure
	}

	return truncate(Merge(lists, SortByRecency), limit), nil
}
