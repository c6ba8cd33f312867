package di

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"unmute/config"
	"unmute/domain"
	"unmute/gateway/analytics_gateway"
	"unmute/gateway/content_partition_gateway"
	"unmute/gateway/social_graph_gateway"
	"unmute/usecase/feed_usecase"
	"unmute/utils/metrics"
	"unmute/utils/rate_limiter"
)

type ApplicationComponents struct {
	FeedOrchestrator *feed_usecase.FeedOrchestrator
	FeedMetrics      *metrics.FeedMetrics
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	return newComponents(pool, cfg, prometheus.DefaultRegisterer)
}

// NewApplicationComponentsWithRegisterer lets tests use an isolated metrics
// registry.
func NewApplicationComponentsWithRegisterer(pool *pgxpool.Pool, cfg *config.Config, reg prometheus.Registerer) *ApplicationComponents {
	return newComponents(pool, cfg, reg)
}

func newComponents(pool *pgxpool.Pool, cfg *config.Config, reg prometheus.Registerer) *ApplicationComponents {
	feedMetrics := metrics.NewFeedMetrics(reg)

	partitionGateway := content_partition_gateway.NewContentPartitionGateway(pool)
	socialGraphGateway := social_graph_gateway.NewSocialGraphGateway(pool)

	analyticsLimiter := rate_limiter.NewEventRateLimiter(
		cfg.RateLimit.AnalyticsInterval,
		cfg.RateLimit.AnalyticsBurst,
	)
	analyticsGateway := analytics_gateway.NewAnalyticsGateway(pool, analyticsLimiter)

	cascade := feed_usecase.NewCascade(feedMetrics)

	followingFetcher := feed_usecase.NewFollowingFetcher(partitionGateway, socialGraphGateway)
	trendingFetcher := feed_usecase.NewTrendingFetcher(partitionGateway, cascade)
	forYouFetcher := feed_usecase.NewForYouFetcher(partitionGateway, trendingFetcher, followingFetcher)
	musicFetcher := feed_usecase.NewMusicFetcher(partitionGateway)
	collabsFetcher := feed_usecase.NewCollabsFetcher(partitionGateway, cascade)

	fetchers := map[domain.FeedType]feed_usecase.SourceFetcher{
		domain.FeedForYou:    forYouFetcher,
		domain.FeedFollowing: followingFetcher,
		domain.FeedTrending:  trendingFetcher,
		domain.FeedMusic:     musicFetcher,
		domain.FeedCollabs:   collabsFetcher,
	}

	feedOrchestrator := feed_usecase.NewFeedOrchestrator(
		fetchers,
		analyticsGateway,
		feedMetrics,
		cfg.Feed.DefaultLimit,
		cfg.Feed.MaxLimit,
	)

	return &ApplicationComponents{
		FeedOrchestrator: feedOrchestrator,
		FeedMetrics:      feedMetrics,
	}
}
