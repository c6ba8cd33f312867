package social_graph_gateway

import (
	"context"
	"fmt"

	"unmute/driver/unmute_db"
	"unmute/utils/errors"
	"unmute/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SocialGraphGateway implements social_graph_port on the database driver.
// Failures surface as ErrSocialGraphUnavailable; fetchers degrade to a
// viewer-only author set.
type SocialGraphGateway struct {
	repo *unmute_db.FeedDBRepository
}

func NewSocialGraphGateway(pool *pgxpool.Pool) *SocialGraphGateway {
	return &SocialGraphGateway{repo: unmute_db.NewFeedDBRepository(pool)}
}

// NewSocialGraphGatewayWithRepository wires an explicit repository, used by
// tests running against pgxmock.
func NewSocialGraphGatewayWithRepository(repo *unmute_db.FeedDBRepository) *SocialGraphGateway {
	return &SocialGraphGateway{repo: repo}
}

func (g *SocialGraphGateway) GetFollowing(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	following, err := g.repo.GetFollowing(ctx, viewerID)
	if err != nil {
		logger.SafeErrorContext(ctx, "social graph lookup failed", "viewer_id", viewerID, "error", err)
		return nil, fmt.Errorf("following set for %s: %w", viewerID, errors.ErrSocialGraphUnavailable)
	}
	return following, nil
}
