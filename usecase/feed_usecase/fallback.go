package feed_usecase

import (
	"context"

	"unmute/domain"
	"unmute/utils/logger"
	"unmute/utils/metrics"
	"unmute/utils/resilience"
)

// Cascade is the single place the "try optimized, else degrade" policy
// lives. Fetchers hand it a preferred path and a fallback path instead of
// branching at each call site.
type Cascade struct {
	metrics *metrics.FeedMetrics
	breaker *resilience.ProbeBreaker
}

func NewCascade(m *metrics.FeedMetrics) *Cascade {
	return &Cascade{
		metrics: m,
		breaker: resilience.NewProbeBreaker(nil),
	}
}

type fetchPath func(ctx context.Context) ([]*domain.ContentItem, error)

// Run executes the preferred path and degrades to the fallback on any
// error. The fallback's own error, if any, is returned unchanged.
func (c *Cascade) Run(ctx context.Context, operation string, preferred, fallback fetchPath) ([]*domain.ContentItem, error) {
	items, err := preferred(ctx)
	if err == nil {
		return items, nil
	}

	logger.SafeWarnContext(ctx, "optimized fetch path degraded to fallback",
		"operation", operation,
		"error", err,
	)
	if c.metrics != nil {
		c.metrics.ObserveFallback(operation)
	}

	return fallback(ctx)
}

// Probe runs a capability probe under the circuit breaker so a flapping
// backend is not re-probed on every request. ok is false when the probe
// itself failed or was rejected; callers then treat the capability as
// absent but may retry on a later request.
func (c *Cascade) Probe(ctx context.Context, operation string, probe func(context.Context) (bool, error)) (available, ok bool) {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var probeErr error
		available, probeErr = probe(ctx)
		return probeErr
	})
	if err != nil {
		logger.SafeWarnContext(ctx, "capability probe failed, assuming absent",
			"operation", operation,
			"error", err,
		)
		if c.metrics != nil {
			c.metrics.ObserveFallback(operation)
		}
		return false, false
	}
	return available, true
}
