package analytics_gateway

import (
	"context"

	"unmute/driver/unmute_db"
	"unmute/utils/errors"
	"unmute/utils/logger"
	"unmute/utils/rate_limiter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyticsGateway implements analytics_port on the database driver with a
// per-event-type rate limiter in front. Excess events are dropped rather
// than queued; the sink is best-effort.
type AnalyticsGateway struct {
	repo    *unmute_db.FeedDBRepository
	limiter *rate_limiter.EventRateLimiter
}

func NewAnalyticsGateway(pool *pgxpool.Pool, limiter *rate_limiter.EventRateLimiter) *AnalyticsGateway {
	return &AnalyticsGateway{
		repo:    unmute_db.NewFeedDBRepository(pool),
		limiter: limiter,
	}
}

// NewAnalyticsGatewayWithRepository wires an explicit repository, used by
// tests running against pgxmock.
func NewAnalyticsGatewayWithRepository(repo *unmute_db.FeedDBRepository, limiter *rate_limiter.EventRateLimiter) *AnalyticsGateway {
	return &AnalyticsGateway{repo: repo, limiter: limiter}
}

func (g *AnalyticsGateway) Record(ctx context.Context, viewerID uuid.UUID, eventType string, payload map[string]any) error {
	if g.limiter != nil && !g.limiter.Allow(eventType) {
		logger.SafeWarnContext(ctx, "analytics event dropped by rate limiter", "event_type", eventType)
		return nil
	}

	if err := g.repo.InsertAnalyticsEvent(ctx, viewerID, eventType, payload); err != nil {
		return errors.AnalyticsError("failed to record analytics event", err, map[string]interface{}{
			"event_type": eventType,
			"viewer_id":  viewerID.String(),
		})
	}

	return nil
}
