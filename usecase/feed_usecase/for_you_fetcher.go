package feed_usecase

import (
	"context"

	"unmute/domain"
	"unmute/port/content_partition_port"
	"unmute/utils/errors"
	"unmute/utils/logger"
)

// ForYouFetcher blends interest-matched content with the trending and
// following feeds. Interest tags decide inclusion only; the matched set
// leads the page and supplements are appended behind it.
type ForYouFetcher struct {
	partitions content_partition_port.ContentPartitionPort
	trending   SourceFetcher
	following  SourceFetcher
}

func NewForYouFetcher(partitions content_partition_port.ContentPartitionPort, trending, following SourceFetcher) *ForYouFetcher {
	return &ForYouFetcher{
		partitions: partitions,
		trending:   trending,
		following:  following,
	}
}

func (f *ForYouFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	if len(viewer.InterestTags) == 0 {
		return f.fetchWithoutInterests(ctx, viewer, limit, offset)
	}

	matched, matchFailed := f.fetchInterestMatched(ctx, viewer.InterestTags, limit, offset)

	if len(matched) >= limit {
		return truncate(matched, limit), nil
	}

	supplement := f.fetchBlend(ctx, viewer, limit-len(matched), offset, keySet(matched))

	page := append(matched, supplement...)
	if len(page) == 0 && matchFailed {
		return nil, errors.ErrTotalFetchFailure
	}
	return truncate(page, limit), nil
}

// fetchInterestMatched runs the tag-overlap fan-out across all kinds. The
// boolean reports whether every kind failed.
func (f *ForYouFetcher) fetchInterestMatched(ctx context.Context, tags []string, limit, offset int) ([]*domain.ContentItem, bool) {
	lists, failed := fanOutDegradable(ctx, domain.AllContentKinds, func(ctx context.Context, kind domain.ContentKind) ([]*domain.ContentItem, error) {
		return f.partitions.QueryByTagOverlap(ctx, kind, tags, limit, offset)
	})

	matched := truncate(Merge(lists, SortByRecency), limit)
	return matched, allFailed(domain.AllContentKinds, failed)
}

// fetchBlend supplements an under-filled page with a 50/50 mix of trending
// and following output, deduplicated against what is already on the page.
func (f *ForYouFetcher) fetchBlend(ctx context.Context, viewer domain.ViewerContext, need, offset int, taken map[domain.ContentKey]struct{}) []*domain.ContentItem {
	if need <= 0 {
		return nil
	}

	half := (need + 1) / 2

	trendingItems, err := f.trending.Fetch(ctx, viewer, half, offset)
	if err != nil {
		logger.SafeWarnContext(ctx, "for-you trending supplement degraded to empty", "error", err)
		trendingItems = nil
	}

	followingItems, err := f.following.Fetch(ctx, viewer, half, offset)
	if err != nil {
		logger.SafeWarnContext(ctx, "for-you following supplement degraded to empty", "error", err)
		followingItems = nil
	}

	blend := Merge([][]*domain.ContentItem{trendingItems, followingItems}, SortByRecency)
	blend = excludeKeys(blend, taken)
	return truncate(blend, need)
}

// fetchWithoutInterests serves a viewer with no declared interest tags:
// half the page from following, topped up with trending until the page is
// full or sources are exhausted.
func (f *ForYouFetcher) fetchWithoutInterests(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	half := limit / 2
	if half < 1 {
		half = limit
	}

	followingItems, followingErr := f.following.Fetch(ctx, viewer, half, offset)
	if followingErr != nil {
		logger.SafeWarnContext(ctx, "for-you following base degraded to empty", "error", followingErr)
		followingItems = nil
	}

	page := Merge([][]*domain.ContentItem{followingItems}, SortByRecency)

	need := limit - len(page)
	if need > 0 {
		trendingItems, trendingErr := f.trending.Fetch(ctx, viewer, limit, offset)
		if trendingErr != nil {
			logger.SafeWarnContext(ctx, "for-you trending top-up degraded to empty", "error", trendingErr)
			if followingErr != nil {
				return nil, errors.ErrTotalFetchFailure
			}
			trendingItems = nil
		}

		topUp := excludeKeys(Merge([][]*domain.ContentItem{trendingItems}, SortByRecency), keySet(page))
		page = append(page, truncate(topUp, need)...)
	}

	return truncate(page, limit), nil
}
