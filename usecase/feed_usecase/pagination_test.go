package feed_usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unmute/domain"
)

func TestAdvancePagination(t *testing.T) {
	tests := []struct {
		name         string
		startOffset  int
		newItemCount int
		limit        int
		wantOffset   int
		wantHasMore  bool
	}{
		{
			name:         "full page advances offset and keeps hasMore",
			startOffset:  0,
			newItemCount: 20,
			limit:        20,
			wantOffset:   20,
			wantHasMore:  true,
		},
		{
			name:         "underfull page exhausts the session",
			startOffset:  40,
			newItemCount: 7,
			limit:        20,
			wantOffset:   40,
			wantHasMore:  false,
		},
		{
			name:         "empty page exhausts the session",
			startOffset:  20,
			newItemCount: 0,
			limit:        20,
			wantOffset:   20,
			wantHasMore:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newFeedSession(domain.ViewerContext{}, domain.FeedTrending, tt.limit)
			session.offset = tt.startOffset

			advancePagination(session, tt.newItemCount, tt.limit)

			assert.Equal(t, tt.wantOffset, session.offset)
			assert.Equal(t, tt.wantHasMore, session.hasMore)
			assert.Zero(t, session.offset%tt.limit, "offset stays a multiple of limit")
		})
	}
}

func TestResetPagination(t *testing.T) {
	session := newFeedSession(domain.ViewerContext{}, domain.FeedFollowing, 10)
	session.offset = 30
	session.items = make([]*domain.ContentItem, 3)
	session.hasMore = false

	resetPagination(session)

	assert.Zero(t, session.offset)
	assert.Empty(t, session.items)
	assert.True(t, session.hasMore)
}
