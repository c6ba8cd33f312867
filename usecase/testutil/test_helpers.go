package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"unmute/domain"
)

// BaseTime anchors relative timestamps so ordering assertions are
// deterministic.
var BaseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Item builds a content item of the given kind created minutesAgo before
// BaseTime. The per-kind attribute struct is populated so the item passes
// variant checks.
func Item(kind domain.ContentKind, id uuid.UUID, minutesAgo int) *domain.ContentItem {
	item := &domain.ContentItem{
		ID:        id,
		Kind:      kind,
		AuthorID:  uuid.New(),
		CreatedAt: BaseTime.Add(-time.Duration(minutesAgo) * time.Minute),
	}

	switch kind {
	case domain.KindImage:
		item.Image = &domain.ImageAttrs{URL: "https://cdn.test/img/" + id.String()}
	case domain.KindText:
		item.Text = &domain.TextAttrs{Body: "post " + id.String()}
	case domain.KindReel:
		item.Reel = &domain.ReelAttrs{VideoURL: "https://cdn.test/reel/" + id.String(), AudioRef: "audio-" + id.String()}
	case domain.KindCollab:
		item.Collab = &domain.CollabAttrs{Title: "collab " + id.String()}
	}

	return item
}

// ItemWithScore builds an item carrying a populated engagement score.
func ItemWithScore(kind domain.ContentKind, id uuid.UUID, minutesAgo int, score float64) *domain.ContentItem {
	item := Item(kind, id, minutesAgo)
	item.EngagementScore = &score
	return item
}

// ItemWithTags builds an item carrying the given tags.
func ItemWithTags(kind domain.ContentKind, id uuid.UUID, minutesAgo int, tags ...string) *domain.ContentItem {
	item := Item(kind, id, minutesAgo)
	item.Tags = tags
	return item
}

// Items builds n items of one kind with strictly decreasing recency.
func Items(kind domain.ContentKind, n, startMinutesAgo int) []*domain.ContentItem {
	items := make([]*domain.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item(kind, uuid.New(), startMinutesAgo+i))
	}
	return items
}

// Common error instances
var (
	ErrMockDatabase = errors.New("mock database error")
	ErrMockNetwork  = errors.New("mock network error")
)

// CreateCancelledContext returns an already-cancelled context.
func CreateCancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
