package feed_usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"unmute/domain"
	"unmute/port/analytics_port"
	"unmute/utils/errors"
	"unmute/utils/logger"
	"unmute/utils/metrics"
)

// feedViewEvent is the analytics event type recorded per fetched page.
const feedViewEvent = "feed_view"

// FeedOrchestrator is the public entry point of the engine. It selects the
// source fetcher for a feed mode, drives pagination, and records one
// best-effort analytics event per fetch.
type FeedOrchestrator struct {
	fetchers  map[domain.FeedType]SourceFetcher
	analytics analytics_port.AnalyticsPort
	metrics   *metrics.FeedMetrics
	sessions  *SessionStore

	defaultLimit int
	maxLimit     int
}

func NewFeedOrchestrator(
	fetchers map[domain.FeedType]SourceFetcher,
	analytics analytics_port.AnalyticsPort,
	m *metrics.FeedMetrics,
	defaultLimit, maxLimit int,
) *FeedOrchestrator {
	return &FeedOrchestrator{
		fetchers:     fetchers,
		analytics:    analytics,
		metrics:      m,
		sessions:     NewSessionStore(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Sessions exposes the live session store to the transport layer.
func (o *FeedOrchestrator) Sessions() *SessionStore {
	return o.sessions
}

// GetFeedPage serves the stateless inbound call shape: one page of one
// feed mode, no session kept.
func (o *FeedOrchestrator) GetFeedPage(ctx context.Context, req domain.FeedRequest) (*domain.FeedPage, error) {
	limit, err := o.normalizeLimit(req.Limit)
	if err != nil {
		return nil, err
	}
	if req.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", errors.ErrInvalidInput)
	}

	fetcher, err := o.fetcherFor(req.FeedType)
	if err != nil {
		return nil, err
	}

	items, err := o.runFetch(ctx, fetcher, req.FeedType, req.Viewer(), limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &domain.FeedPage{
		Items:   items,
		HasMore: len(items) == limit,
	}, nil
}

// Open creates a session for a feed view and performs the initial refresh.
func (o *FeedOrchestrator) Open(ctx context.Context, viewer domain.ViewerContext, feedType domain.FeedType, limit int) (*FeedSession, error) {
	normalized, err := o.normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	if _, err := o.fetcherFor(feedType); err != nil {
		return nil, err
	}

	session := newFeedSession(viewer, feedType, normalized)
	o.sessions.Put(session)

	if err := o.Refresh(ctx, session); err != nil {
		// The session stays open with its error flag set; existing
		// content (none yet) is preserved and the caller may retry.
		return session, err
	}
	return session, nil
}

// FetchMore loads the next page into the session. It is a no-op when the
// session is exhausted and rejects overlapping calls while a fetch is in
// flight, which keeps rapid repeated invocations from duplicating pages.
func (o *FeedOrchestrator) FetchMore(ctx context.Context, session *FeedSession) error {
	fetcher, err := o.fetcherFor(session.FeedType)
	if err != nil {
		return err
	}

	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return errors.ErrSessionNotFound
	}
	if session.loading {
		session.mu.Unlock()
		return errors.ErrSessionBusy
	}
	if !session.hasMore {
		session.mu.Unlock()
		return nil
	}
	session.loading = true
	generation := session.generation
	offset := session.offset
	limit := session.Limit
	session.mu.Unlock()

	items, fetchErr := o.runFetch(ctx, fetcher, session.FeedType, session.Viewer, limit, offset)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.loading = false

	if session.closed || session.generation != generation {
		// The view was closed or refreshed while this fetch was in
		// flight; the stale result must not mutate the session.
		return nil
	}

	if fetchErr != nil {
		session.err = fetchErr
		return fetchErr
	}

	session.err = nil
	session.items = append(session.items, items...)
	advancePagination(session, len(items), limit)
	return nil
}

// Refresh resets pagination and replaces the accumulated items wholesale.
// On failure the previous items remain visible.
func (o *FeedOrchestrator) Refresh(ctx context.Context, session *FeedSession) error {
	fetcher, err := o.fetcherFor(session.FeedType)
	if err != nil {
		return err
	}

	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return errors.ErrSessionNotFound
	}
	if session.loading {
		session.mu.Unlock()
		return errors.ErrSessionBusy
	}
	session.loading = true
	session.generation++
	generation := session.generation
	limit := session.Limit
	session.mu.Unlock()

	items, fetchErr := o.runFetch(ctx, fetcher, session.FeedType, session.Viewer, limit, 0)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.loading = false

	if session.closed || session.generation != generation {
		return nil
	}

	if fetchErr != nil {
		session.err = fetchErr
		return fetchErr
	}

	session.err = nil
	resetPagination(session)
	session.items = items
	advancePagination(session, len(items), limit)
	return nil
}

// Close discards a session. A fetch still in flight will drop its result
// on arrival.
func (o *FeedOrchestrator) Close(session *FeedSession) {
	session.mu.Lock()
	session.closed = true
	session.generation++
	session.mu.Unlock()

	o.sessions.Delete(session.ID)
}

// Page returns the current accumulated view of the session.
func (o *FeedOrchestrator) Page(session *FeedSession) *domain.FeedPage {
	session.mu.Lock()
	defer session.mu.Unlock()
	return &domain.FeedPage{
		Items:   append([]*domain.ContentItem(nil), session.items...),
		HasMore: session.hasMore,
	}
}

func (o *FeedOrchestrator) runFetch(ctx context.Context, fetcher SourceFetcher, feedType domain.FeedType, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	start := time.Now()
	items, err := fetcher.Fetch(ctx, viewer, limit, offset)

	if o.metrics != nil {
		o.metrics.ObserveFetch(string(feedType), len(items), time.Since(start), err)
	}
	if err != nil {
		logger.SafeErrorContext(ctx, "feed fetch failed",
			"feed_type", feedType,
			"viewer_id", viewer.ViewerID,
			"offset", offset,
			"error", err,
		)
		return nil, err
	}

	o.recordFeedView(ctx, viewer.ViewerID, feedType, limit, offset)
	return items, nil
}

// recordFeedView emits the per-fetch analytics event. Fire-and-forget: it
// never blocks the request and its failures are logged and discarded.
func (o *FeedOrchestrator) recordFeedView(ctx context.Context, viewerID uuid.UUID, feedType domain.FeedType, limit, offset int) {
	if o.analytics == nil {
		return
	}

	// Detach from the request's cancellation; the event should survive
	// the response being written.
	eventCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.SafeError("analytics recording panicked", "panic", r)
			}
		}()

		err := o.analytics.Record(eventCtx, viewerID, feedViewEvent, map[string]any{
			"feed_type": string(feedType),
			"offset":    offset,
			"limit":     limit,
		})
		if err != nil {
			logger.SafeWarnContext(eventCtx, "analytics event discarded",
				"event_type", feedViewEvent,
				"error", err,
			)
		}
	}()
}

func (o *FeedOrchestrator) fetcherFor(feedType domain.FeedType) (SourceFetcher, error) {
	fetcher, ok := o.fetchers[feedType]
	if !ok {
		return nil, fmt.Errorf("%w: no fetcher for feed type %q", errors.ErrInvalidInput, feedType)
	}
	return fetcher, nil
}

func (o *FeedOrchestrator) normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return o.defaultLimit, nil
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: limit must be greater than 0", errors.ErrInvalidInput)
	}
	if limit > o.maxLimit {
		return 0, fmt.Errorf("%w: limit cannot exceed %d", errors.ErrInvalidInput, o.maxLimit)
	}
	return limit, nil
}
