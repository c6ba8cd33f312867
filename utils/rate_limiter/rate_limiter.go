package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// EventRateLimiter throttles fire-and-forget event emission per event type.
// The analytics sink is best-effort; dropping excess events is preferable
// to queueing them behind a slow sink.
type EventRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	interval time.Duration
	burst    int
}

func NewEventRateLimiter(interval time.Duration, burst int) *EventRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &EventRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
		burst:    burst,
	}
}

// Allow reports whether an event of the given type may be emitted now.
// Non-blocking: callers drop the event when this returns false.
func (e *EventRateLimiter) Allow(eventType string) bool {
	return e.getLimiter(eventType).Allow()
}

// Wait blocks until an event of the given type may be emitted or the
// context is done.
func (e *EventRateLimiter) Wait(ctx context.Context, eventType string) error {
	return e.getLimiter(eventType).Wait(ctx)
}

func (e *EventRateLimiter) getLimiter(eventType string) *rate.Limiter {
	e.mu.RLock()
	limiter, exists := e.limiters[eventType]
	e.mu.RUnlock()

	if exists {
		return limiter
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Double-check pattern
	if limiter, exists := e.limiters[eventType]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Every(e.interval), e.burst)
	e.limiters[eventType] = limiter
	return limiter
}
