package feed_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"unmute/domain"
	"unmute/mocks"
	"unmute/usecase/testutil"
	"unmute/utils/errors"
)

func TestTrendingFetcher_RanksByEngagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	top := testutil.ItemWithScore(domain.KindReel, uuid.New(), 30, 120)
	mid := testutil.ItemWithScore(domain.KindImage, uuid.New(), 5, 40)
	low := testutil.ItemWithScore(domain.KindText, uuid.New(), 1, 3)

	returns := map[domain.ContentKind][]*domain.ContentItem{
		domain.KindImage:  {mid},
		domain.KindText:   {low},
		domain.KindReel:   {top},
		domain.KindCollab: {},
	}
	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryWithEngagement(gomock.Any(), kind, 10, 0).
			Return(returns[kind], nil)
	}

	fetcher := NewTrendingFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, top.ID, items[0].ID)
	assert.Equal(t, mid.ID, items[1].ID)
	assert.Equal(t, low.ID, items[2].ID)
}

func TestTrendingFetcher_SingleEngagementFailureAbandonsWholePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	// The reel engagement query fails; the other three may or may not
	// complete before the group is cancelled. All-or-nothing: none of
	// their results may be used.
	for _, kind := range domain.AllContentKinds {
		if kind == domain.KindReel {
			partitions.EXPECT().
				QueryWithEngagement(gomock.Any(), kind, 10, 0).
				Return(nil, errors.ErrPartitionUnavailable)
			continue
		}
		partitions.EXPECT().
			QueryWithEngagement(gomock.Any(), kind, 10, 0).
			Return([]*domain.ContentItem{testutil.ItemWithScore(kind, uuid.New(), 1, 50)}, nil).
			MaxTimes(1)
	}

	// Recency fallback serves the page instead.
	fallbackItems := map[domain.ContentKind][]*domain.ContentItem{}
	for _, kind := range domain.AllContentKinds {
		fallbackItems[kind] = testutil.Items(kind, 1, 1)
		partitions.EXPECT().
			QueryRecent(gomock.Any(), kind, 10, 0).
			Return(fallbackItems[kind], nil)
	}

	fetcher := NewTrendingFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	require.Len(t, items, 4)

	for i, item := range items {
		assert.Nil(t, item.EngagementScore, "fallback page must not carry engagement scores")
		if i > 0 {
			assert.False(t, item.CreatedAt.After(items[i-1].CreatedAt),
				"fallback page must be in recency order")
		}
	}
}

func TestTrendingFetcher_FallbackAlsoFailingIsTotalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryWithEngagement(gomock.Any(), kind, 10, 0).
			Return(nil, errors.ErrPartitionUnavailable).
			MaxTimes(1)
		partitions.EXPECT().
			QueryRecent(gomock.Any(), kind, 10, 0).
			Return(nil, errors.ErrPartitionUnavailable)
	}

	fetcher := NewTrendingFetcher(partitions, NewCascade(nil))
	_, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	assert.True(t, errors.IsTotalFetchFailure(err))
}

func TestTrendingFetcher_EngagementTiesBreakByRecency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	newer := testutil.ItemWithScore(domain.KindImage, uuid.New(), 2, 25)
	older := testutil.ItemWithScore(domain.KindText, uuid.New(), 40, 25)

	returns := map[domain.ContentKind][]*domain.ContentItem{
		domain.KindImage:  {newer},
		domain.KindText:   {older},
		domain.KindReel:   {},
		domain.KindCollab: {},
	}
	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryWithEngagement(gomock.Any(), kind, 10, 0).
			Return(returns[kind], nil)
	}

	fetcher := NewTrendingFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
}
