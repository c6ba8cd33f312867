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

func TestCollabsFetcher_UsesDedicatedPartitionWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)
	collabs := testutil.Items(domain.KindCollab, 2, 1)

	partitions.EXPECT().HasCollabPartition(gomock.Any()).Return(true, nil)
	partitions.EXPECT().
		QueryRecent(gomock.Any(), domain.KindCollab, 10, 0).
		Return(collabs, nil)

	fetcher := NewCollabsFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCollabsFetcher_ProbeResultIsCachedForTheProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	partitions.EXPECT().HasCollabPartition(gomock.Any()).Return(true, nil).Times(1)
	partitions.EXPECT().
		QueryRecent(gomock.Any(), domain.KindCollab, 10, 0).
		Return(testutil.Items(domain.KindCollab, 1, 1), nil).
		Times(2)

	fetcher := NewCollabsFetcher(partitions, NewCascade(nil))

	for i := 0; i < 2; i++ {
		_, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)
		require.NoError(t, err)
	}
}

func TestCollabsFetcher_ProbeFailureFallsBackToTokenMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	partitions.EXPECT().
		HasCollabPartition(gomock.Any()).
		Return(false, errors.ErrPartitionUnavailable)

	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryByTagOrText(gomock.Any(), kind, "collab", 10, 0).
			Return([]*domain.ContentItem{testutil.ItemWithTags(kind, uuid.New(), 1, "collab")}, nil)
	}

	fetcher := NewCollabsFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	require.Len(t, items, 4)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt),
			"token-match page must be in recency order")
	}
}

func TestCollabsFetcher_AbsentPartitionIsCachedAndTokenMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	// Conclusive "absent" answer: cached, probed once only.
	partitions.EXPECT().HasCollabPartition(gomock.Any()).Return(false, nil).Times(1)
	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryByTagOrText(gomock.Any(), kind, "collab", 10, 0).
			Return(nil, nil).
			Times(2)
	}

	fetcher := NewCollabsFetcher(partitions, NewCascade(nil))
	for i := 0; i < 2; i++ {
		_, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)
		require.NoError(t, err)
	}
}

func TestCollabsFetcher_DedicatedQueryFailureDegradesToTokenMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partitions := mocks.NewMockContentPartitionPort(ctrl)

	partitions.EXPECT().HasCollabPartition(gomock.Any()).Return(true, nil)
	partitions.EXPECT().
		QueryRecent(gomock.Any(), domain.KindCollab, 10, 0).
		Return(nil, errors.ErrPartitionUnavailable)

	for _, kind := range domain.AllContentKinds {
		partitions.EXPECT().
			QueryByTagOrText(gomock.Any(), kind, "collab", 10, 0).
			Return(nil, nil)
	}

	fetcher := NewCollabsFetcher(partitions, NewCascade(nil))
	items, err := fetcher.Fetch(context.Background(), domain.ViewerContext{}, 10, 0)

	require.NoError(t, err)
	assert.Empty(t, items)
}
