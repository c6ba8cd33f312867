package feed_usecase

import (
	"context"

	"github.com/google/uuid"

	"unmute/domain"
	"unmute/port/content_partition_port"
	"unmute/port/social_graph_port"
	"unmute/utils/errors"
	"unmute/utils/logger"
)

// FollowingFetcher builds the home timeline: recent items from the viewer
// and everyone they follow, across all four content kinds.
type FollowingFetcher struct {
	partitions  content_partition_port.ContentPartitionPort
	socialGraph social_graph_port.SocialGraphPort
}

func NewFollowingFetcher(partitions content_partition_port.ContentPartitionPort, socialGraph social_graph_port.SocialGraphPort) *FollowingFetcher {
	return &FollowingFetcher{partitions: partitions, socialGraph: socialGraph}
}

func (f *FollowingFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	authors := f.resolveAuthors(ctx, viewer.ViewerID)

	var query kindQuery
	if len(authors) == 1 {
		// No follows. A single-author filter is equivalent but wasteful,
		// so take the plain recent query per kind.
		query = func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
			return f.partitions.QueryRecent(ctx, kind, limit, offset)
		}
	} else {
		query = func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
			return f.partitions.QueryByAuthors(ctx, kind, authors, limit, offset)
		}
	}

	lists, failed := fanOutDegradable(ctx, domain.AllContentKinds, query)
	if allFailed(domain.AllContentKinds, failed) {
		return nil, errors.ErrTotalFetchFailure
	}

	return truncate(Merge(lists, SortByRecency), limit), nil
}

// resolveAuthors returns the following set plus the viewer. A social graph
// failure degrades to the viewer alone rather than aborting the feed.
func (f *FollowingFetcher) resolveAuthors(ctx context.Context, viewerID uuid.UUID) []uuid.UUID {
	following, err := f.socialGraph.GetFollowing(ctx, viewerID)
	if err != nil {
		logger.SafeWarnContext(ctx, "social graph degraded to viewer-only author set",
			"viewer_id", viewerID,
			"error", err,
		)
		return []uuid.UUID{viewerID}
	}

	authors := make([]uuid.UUID, 0, len(following)+1)
	seen := make(map[uuid.UUID]struct{}, len(following)+1)
	for _, id := range append(following, viewerID) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		authors = append(authors, id)
	}
	return authors
}
