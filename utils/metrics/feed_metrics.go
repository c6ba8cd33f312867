// Package metrics exposes Prometheus collectors for feed engine operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedMetrics tracks fetch volume, latency, and fallback activity per feed
// type. One instance is shared process-wide through the DI container.
type FeedMetrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	fallbackTotal *prometheus.CounterVec
	itemsReturned *prometheus.HistogramVec
}

// NewFeedMetrics registers the feed collectors on the given registerer.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	factory := promauto.With(reg)

	return &FeedMetrics{
		fetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_fetch_total",
			Help: "Number of feed page fetches by feed type.",
		}, []string{"feed_type"}),
		fetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_fetch_failures_total",
			Help: "Number of feed page fetches that failed entirely.",
		}, []string{"feed_type"}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feed_fetch_duration_seconds",
			Help:    "Feed page fetch latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"feed_type"}),
		fallbackTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_fallback_total",
			Help: "Number of times an optimized fetch path degraded to its fallback.",
		}, []string{"operation"}),
		itemsReturned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feed_page_items",
			Help:    "Items returned per fetched page.",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		}, []string{"feed_type"}),
	}
}

// ObserveFetch records one completed page fetch.
func (m *FeedMetrics) ObserveFetch(feedType string, itemCount int, duration time.Duration, err error) {
	m.fetchTotal.WithLabelValues(feedType).Inc()
	m.fetchDuration.WithLabelValues(feedType).Observe(duration.Seconds())
	if err != nil {
		m.fetchFailures.WithLabelValues(feedType).Inc()
		return
	}
	m.itemsReturned.WithLabelValues(feedType).Observe(float64(itemCount))
}

// ObserveFallback records one degrade of an optimized path.
func (m *FeedMetrics) ObserveFallback(operation string) {
	m.fallbackTotal.WithLabelValues(operation).Inc()
}
