package content_partition_gateway

import (
	"context"
	"fmt"

	"unmute/domain"
	"unmute/driver/models"
	"unmute/driver/unmute_db"
	"unmute/utils/errors"
	"unmute/utils/logger"
	sqlutil "unmute/utils/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentPartitionGateway implements content_partition_port on top of the
// database driver. Every driver failure is translated into
// ErrPartitionUnavailable so fetchers can treat it as "zero items for this
// kind".
type ContentPartitionGateway struct {
	repo *unmute_db.FeedDBRepository
}

func NewContentPartitionGateway(pool *pgxpool.Pool) *ContentPartitionGateway {
	return &ContentPartitionGateway{repo: unmute_db.NewFeedDBRepository(pool)}
}

// NewContentPartitionGatewayWithRepository wires an explicit repository,
// used by tests running against pgxmock.
func NewContentPartitionGatewayWithRepository(repo *unmute_db.FeedDBRepository) *ContentPartitionGateway {
	return &ContentPartitionGateway{repo: repo}
}

func (g *ContentPartitionGateway) QueryRecent(ctx context.Context, kind domain.ContentKind, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryRecent(ctx, string(kind), limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, kind, "query_recent", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) QueryByAuthors(ctx context.Context, kind domain.ContentKind, authorIDs []uuid.UUID, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryByAuthors(ctx, string(kind), authorIDs, limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, kind, "query_by_authors", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) QueryByTagOverlap(ctx context.Context, kind domain.ContentKind, tags []string, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryByTagOverlap(ctx, string(kind), tags, limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, kind, "query_by_tag_overlap", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) QueryByTagOrText(ctx context.Context, kind domain.ContentKind, token string, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryByTagOrText(ctx, string(kind), token, limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, kind, "query_by_tag_or_text", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) QueryWithEngagement(ctx context.Context, kind domain.ContentKind, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryWithEngagement(ctx, string(kind), limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, kind, "query_with_engagement", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) QueryRecentWithAudio(ctx context.Context, limit, offset int) ([]*domain.ContentItem, error) {
	rows, err := g.repo.QueryRecentWithAudio(ctx, limit, offset)
	if err != nil {
		return nil, partitionUnavailable(ctx, domain.KindReel, "query_recent_with_audio", err)
	}
	return mapRows(rows)
}

func (g *ContentPartitionGateway) HasCollabPartition(ctx context.Context) (bool, error) {
	exists, err := g.repo.HasCollabPartition(ctx)
	if err != nil {
		return false, partitionUnavailable(ctx, domain.KindCollab, "collab_partition_probe", err)
	}
	return exists, nil
}

func partitionUnavailable(ctx context.Context, kind domain.ContentKind, operation string, cause error) error {
	logger.SafeErrorContext(ctx, "content partition query failed",
		"kind", kind,
		"operation", operation,
		"error", cause,
	)
	return fmt.Errorf("%s partition %s: %w", kind, operation, errors.ErrPartitionUnavailable)
}

func mapRows(rows []*models.ContentRow) ([]*domain.ContentItem, error) {
	items := make([]*domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		item, err := mapRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func mapRow(row *models.ContentRow) (*domain.ContentItem, error) {
	kind, err := domain.ParseContentKind(row.Kind)
	if err != nil {
		return nil, err
	}

	item := &domain.ContentItem{
		ID:              row.ID,
		Kind:            kind,
		AuthorID:        row.AuthorID,
		CreatedAt:       row.CreatedAt,
		Tags:            row.Tags,
		LikeCount:       row.LikeCount,
		CommentCount:    row.CommentCount,
		EngagementScore: row.EngagementScore,
	}

	switch kind {
	case domain.KindImage:
		item.Image = &domain.ImageAttrs{
			URL:     sqlutil.StringValue(row.ImageURL),
			Caption: sqlutil.StringValue(row.Caption),
		}
	case domain.KindText:
		item.Text = &domain.TextAttrs{
			Body: sqlutil.StringValue(row.Body),
		}
	case domain.KindReel:
		item.Reel = &domain.ReelAttrs{
			VideoURL:        sqlutil.StringValue(row.VideoURL),
			AudioRef:        sqlutil.StringValue(row.AudioRef),
			DurationSeconds: sqlutil.IntValue(row.DurationSeconds),
		}
	case domain.KindCollab:
		item.Collab = &domain.CollabAttrs{
			Title:      sqlutil.StringValue(row.Title),
			PartnerIDs: row.PartnerIDs,
		}
	}

	return item, nil
}
