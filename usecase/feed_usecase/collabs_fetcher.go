package feed_usecase

import (
	"context"
	"sync"

	"unmute/domain"
	"unmute/port/content_partition_port"
	"unmute/utils/errors"
)

// collabToken is the literal matched against tags and text when the
// dedicated collaboration partition is absent.
const collabToken = "collab"

// CollabsFetcher serves collaboration content. The schema may or may not
// carry a dedicated collaboration partition; the fetcher probes for it and
// must keep working when it is absent or erroring.
type CollabsFetcher struct {
	partitions content_partition_port.ContentPartitionPort
	cascade    *Cascade

	// A conclusive probe result is cached for the process lifetime; a
	// failing probe is retried on later requests, throttled by the
	// cascade's breaker.
	mu           sync.Mutex
	probed       bool
	hasPartition bool
}

func NewCollabsFetcher(partitions content_partition_port.ContentPartitionPort, cascade *Cascade) *CollabsFetcher {
	return &CollabsFetcher{partitions: partitions, cascade: cascade}
}

func (f *CollabsFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	if !f.dedicatedPartitionAvailable(ctx) {
		return f.fetchByToken(ctx, limit, offset)
	}

	return f.cascade.Run(ctx, "collabs_dedicated",
		func(ctx context.Context) ([]*domain.ContentItem, error) {
			items, err := f.partitions.QueryRecent(ctx, domain.KindCollab, limit, offset)
			if err != nil {
				return nil, err
			}
			return truncate(items, limit), nil
		},
		func(ctx context.Context) ([]*domain.ContentItem, error) {
			return f.fetchByToken(ctx, limit, offset)
		},
	)
}

func (f *CollabsFetcher) dedicatedPartitionAvailable(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.probed {
		return f.hasPartition
	}

	available, ok := f.cascade.Probe(ctx, "collabs_partition_probe", f.partitions.HasCollabPartition)
	if ok {
		f.probed = true
		f.hasPartition = available
	}
	return available
}

// fetchByToken rebuilds the collabs view from the four general partitions
// by tag-or-text match on the collab token.
func (f *CollabsFetcher) fetchByToken(ctx context.Context, limit, offset int) ([]*domain.ContentItem, error) {
	lists, failed := fanOutDegradable(ctx, domain.AllContentKinds, func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
		return f.partitions.QueryByTagOrText(ctx, kind, collabToken, limit, offset)
	})
	if allFailed(domain.AllContentKinds, failed) {
		return nil, errors.ErrTotalFetchFailure
	}

	return truncate(Merge(lists, SortByRecency), limit), nil
}
