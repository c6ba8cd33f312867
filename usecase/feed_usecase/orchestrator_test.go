package feed_usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unmute/domain"
	"unmute/port/analytics_port"
	"unmute/usecase/testutil"
	"unmute/utils/errors"
)

// pagingFetcher serves full pages of fresh items until drained, then an
// underfull tail. Calls are recorded per offset.
type pagingFetcher struct {
	mu        sync.Mutex
	remaining int
	next      int
	err       error
	offsets   []int
}

func (p *pagingFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offsets = append(p.offsets, offset)
	if p.err != nil {
		return nil, p.err
	}

	count := limit
	if p.remaining < count {
		count = p.remaining
	}
	items := testutil.Items(domain.KindImage, count, p.next)
	p.next += count
	p.remaining -= count
	return items, nil
}

// blockingFetcher parks every fetch until released.
type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
	items   []*domain.ContentItem
}

func newBlockingFetcher(items []*domain.ContentItem) *blockingFetcher {
	return &blockingFetcher{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		items:   items,
	}
}

func (b *blockingFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	b.started <- struct{}{}
	<-b.release
	return b.items, nil
}

// recordingAnalytics counts events and signals each arrival.
type recordingAnalytics struct {
	mu       sync.Mutex
	events   []string
	err      error
	recorded chan struct{}
}

func newRecordingAnalytics(err error) *recordingAnalytics {
	return &recordingAnalytics{err: err, recorded: make(chan struct{}, 16)}
}

func (r *recordingAnalytics) Record(ctx context.Context, viewerID uuid.UUID, eventType string, payload map[string]any) error {
	r.mu.Lock()
	r.events = append(r.events, eventType)
	r.mu.Unlock()
	r.recorded <- struct{}{}
	return r.err
}

func (r *recordingAnalytics) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newTestOrchestrator(fetcher SourceFetcher, analytics analytics_port.AnalyticsPort) *FeedOrchestrator {
	fetchers := map[domain.FeedType]SourceFetcher{
		domain.FeedForYou:   fetcher,
		domain.FeedTrending: fetcher,
	}
	return NewFeedOrchestrator(fetchers, analytics, nil, 20, 100)
}

func TestGetFeedPage_Validation(t *testing.T) {
	orchestrator := newTestOrchestrator(&pagingFetcher{remaining: 50}, nil)
	viewerID := uuid.New()

	tests := []struct {
		name string
		req  domain.FeedRequest
	}{
		{
			name: "negative limit",
			req:  domain.FeedRequest{ViewerID: viewerID, FeedType: domain.FeedForYou, Limit: -1},
		},
		{
			name: "limit above maximum",
			req:  domain.FeedRequest{ViewerID: viewerID, FeedType: domain.FeedForYou, Limit: 101},
		},
		{
			name: "negative offset",
			req:  domain.FeedRequest{ViewerID: viewerID, FeedType: domain.FeedForYou, Limit: 10, Offset: -1},
		},
		{
			name: "unknown feed type",
			req:  domain.FeedRequest{ViewerID: viewerID, FeedType: domain.FeedType("unknown"), Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orchestrator.GetFeedPage(context.Background(), tt.req)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestGetFeedPage_DefaultLimitAndHasMore(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 50}
	orchestrator := newTestOrchestrator(fetcher, nil)

	page, err := orchestrator.GetFeedPage(context.Background(), domain.FeedRequest{
		ViewerID: uuid.New(),
		FeedType: domain.FeedForYou,
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 20, "zero limit falls back to the configured default")
	assert.True(t, page.HasMore)
}

func TestGetFeedPage_UnderfullPageReportsNoMore(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 7}
	orchestrator := newTestOrchestrator(fetcher, nil)

	page, err := orchestrator.GetFeedPage(context.Background(), domain.FeedRequest{
		ViewerID: uuid.New(),
		FeedType: domain.FeedForYou,
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 7)
	assert.False(t, page.HasMore)
}

func TestOpenAndFetchMore_PaginationAdvancesByFullPages(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 100}
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session, err := orchestrator.Open(ctx, domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, session.Offset())
	assert.Len(t, session.Items(), 10)

	for i := 2; i <= 4; i++ {
		require.NoError(t, orchestrator.FetchMore(ctx, session))
		assert.Equal(t, i*10, session.Offset(), "offset tracks full pages only")
		assert.Len(t, session.Items(), i*10)
	}

	fetcher.mu.Lock()
	assert.Equal(t, []int{0, 10, 20, 30}, fetcher.offsets)
	fetcher.mu.Unlock()
	assert.True(t, session.HasMore())
}

func TestFetchMore_ExhaustedSessionIsNoOp(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 15}
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session, err := orchestrator.Open(ctx, domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	require.NoError(t, err)

	require.NoError(t, orchestrator.FetchMore(ctx, session))
	assert.Len(t, session.Items(), 15)
	assert.False(t, session.HasMore())
	assert.Equal(t, 10, session.Offset(), "the underfull tail does not advance the cursor")

	// Exhausted sessions absorb further calls without touching the source.
	require.NoError(t, orchestrator.FetchMore(ctx, session))
	fetcher.mu.Lock()
	assert.Len(t, fetcher.offsets, 2)
	fetcher.mu.Unlock()
}

func TestFetchMore_RejectsOverlappingCalls(t *testing.T) {
	fetcher := newBlockingFetcher(testutil.Items(domain.KindImage, 10, 1))
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session := newFeedSession(domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	orchestrator.sessions.Put(session)

	done := make(chan error, 1)
	go func() { done <- orchestrator.FetchMore(ctx, session) }()
	<-fetcher.started

	err := orchestrator.FetchMore(ctx, session)
	assert.ErrorIs(t, err, errors.ErrSessionBusy)

	close(fetcher.release)
	require.NoError(t, <-done)
	assert.Len(t, session.Items(), 10)
}

func TestFetchMore_ErrorPreservesExistingItems(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 100}
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session, err := orchestrator.Open(ctx, domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	require.NoError(t, err)

	fetcher.mu.Lock()
	fetcher.err = testutil.ErrMockDatabase
	fetcher.mu.Unlock()

	err = orchestrator.FetchMore(ctx, session)
	assert.ErrorIs(t, err, testutil.ErrMockDatabase)
	assert.ErrorIs(t, session.Err(), testutil.ErrMockDatabase)
	assert.Len(t, session.Items(), 10, "a failed fetch never discards loaded content")
	assert.Equal(t, 10, session.Offset())

	// The next successful fetch clears the error and resumes paging.
	fetcher.mu.Lock()
	fetcher.err = nil
	fetcher.mu.Unlock()

	require.NoError(t, orchestrator.FetchMore(ctx, session))
	assert.NoError(t, session.Err())
	assert.Len(t, session.Items(), 20)
}

func TestRefresh_ResetsPaginationAndReplacesItems(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 100}
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session, err := orchestrator.Open(ctx, domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	require.NoError(t, err)
	require.NoError(t, orchestrator.FetchMore(ctx, session))
	require.Len(t, session.Items(), 20)

	require.NoError(t, orchestrator.Refresh(ctx, session))

	assert.Len(t, session.Items(), 10, "refresh replaces the timeline wholesale")
	assert.Equal(t, 10, session.Offset(), "refresh leaves the session one page in")
	assert.True(t, session.HasMore())

	fetcher.mu.Lock()
	assert.Equal(t, 0, fetcher.offsets[len(fetcher.offsets)-1], "refresh always fetches from the top")
	fetcher.mu.Unlock()
}

func TestClose_InFlightResultIsDiscarded(t *testing.T) {
	fetcher := newBlockingFetcher(testutil.Items(domain.KindImage, 10, 1))
	orchestrator := newTestOrchestrator(fetcher, nil)
	ctx := context.Background()

	session := newFeedSession(domain.ViewerContext{ViewerID: uuid.New()}, domain.FeedForYou, 10)
	orchestrator.sessions.Put(session)

	done := make(chan error, 1)
	go func() { done <- orchestrator.FetchMore(ctx, session) }()
	<-fetcher.started

	orchestrator.Close(session)
	close(fetcher.release)

	require.NoError(t, <-done)
	assert.Empty(t, session.Items(), "a result arriving after close must not land")

	_, ok := orchestrator.Sessions().Get(session.ID)
	assert.False(t, ok)

	err := orchestrator.FetchMore(ctx, session)
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestRecordFeedView_FailuresAreSwallowed(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 50}
	analytics := newRecordingAnalytics(testutil.ErrMockNetwork)
	orchestrator := newTestOrchestrator(fetcher, analytics)

	page, err := orchestrator.GetFeedPage(context.Background(), domain.FeedRequest{
		ViewerID: uuid.New(),
		FeedType: domain.FeedForYou,
		Limit:    10,
	})

	require.NoError(t, err, "analytics failures never surface to the caller")
	assert.Len(t, page.Items, 10)

	select {
	case <-analytics.recorded:
	case <-time.After(time.Second):
		t.Fatal("analytics event was never recorded")
	}
	assert.Equal(t, 1, analytics.count())
}

func TestRunFetch_FailedFetchRecordsNoAnalytics(t *testing.T) {
	fetcher := &pagingFetcher{remaining: 50, err: testutil.ErrMockDatabase}
	analytics := newRecordingAnalytics(nil)
	orchestrator := newTestOrchestrator(fetcher, analytics)

	_, err := orchestrator.GetFeedPage(context.Background(), domain.FeedRequest{
		ViewerID: uuid.New(),
		FeedType: domain.FeedForYou,
		Limit:    10,
	})

	assert.ErrorIs(t, err, testutil.ErrMockDatabase)

	select {
	case <-analytics.recorded:
		t.Fatal("failed fetches must not emit view events")
	case <-time.After(50 * time.Millisecond):
	}
}
