package content_partition_port

import (
	"context"

	"github.com/google/uuid"

	"unmute/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=partition_port.go -destination=../../mocks/mock_content_partition_port.go -package=mocks

// ContentPartitionPort is the typed query capability against one content
// kind. Any call may fail with errors wrapping ErrPartitionUnavailable;
// callers treat that as zero items for the kind, never as fatal for the
// whole feed.
type ContentPartitionPort interface {
	// QueryByAuthors returns items authored by any of authorIDs, newest
	// first.
	QueryByAuthors(ctx context.Context, kind domain.ContentKind, authorIDs []uuid.UUID, limit, offset int) ([]*domain.ContentItem, error)

	// QueryByTagOverlap returns items whose tag set overlaps tags, newest
	// first.
	QueryByTagOverlap(ctx context.Context, kind domain.ContentKind, tags []string, limit, offset int) ([]*domain.ContentItem, error)

	// QueryByTagOrText returns items carrying the token as a tag or in
	// their text field, newest first. Used by the collabs fallback when
	// the dedicated partition is absent.
	QueryByTagOrText(ctx context.Context, kind domain.ContentKind, token string, limit, offset int) ([]*domain.ContentItem, error)

	// QueryRecent returns items of one kind, newest first.
	QueryRecent(ctx context.Context, kind domain.ContentKind, limit, offset int) ([]*domain.ContentItem, error)

	// QueryWithEngagement returns items pre-annotated with a computed
	// engagement score, highest score first.
	QueryWithEngagement(ctx context.Context, kind domain.ContentKind, limit, offset int) ([]*domain.ContentItem, error)

	// QueryRecentWithAudio returns reel items carrying a non-empty audio
	// reference, newest first. Only meaningful for the reel kind.
	QueryRecentWithAudio(ctx context.Context, limit, offset int) ([]*domain.ContentItem, error)

	// HasCollabPartition probes whether the dedicated collaboration
	// partition exists. Callers must tolerate absence.
	HasCollabPartition(ctx context.Context) (bool, error)
}
