package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// BreakerState represents the state of the probe breaker.
type BreakerState string

const (
	StateClosed   BreakerState = "closed"
	StateOpen     BreakerState = "open"
	StateHalfOpen BreakerState = "half_open"
)

// ErrBreakerOpen is returned when the breaker rejects an execution.
var ErrBreakerOpen = errors.New("probe breaker is open")

// BreakerConfig holds the configuration for the probe breaker.
type BreakerConfig struct {
	FailureThreshold int           `json:"failure_threshold"`
	ResetTimeout     time.Duration `json:"reset_timeout"`
}

// DefaultBreakerConfig returns the default configuration.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		FailureThreshold: 3,
		ResetTimeout:     60 * time.Second,
	}
}

// ProbeBreaker is a minimal circuit breaker guarding capability probes
// against flapping backends. After FailureThreshold consecutive failures
// it opens and rejects executions until ResetTimeout elapses, then allows
// a single half-open attempt.
type ProbeBreaker struct {
	config          *BreakerConfig
	state           BreakerState
	failureCount    int
	lastFailureTime time.Time
	mu              sync.Mutex
}

// NewProbeBreaker creates a breaker with the given (or default) config.
func NewProbeBreaker(config *BreakerConfig) *ProbeBreaker {
	if config == nil {
		config = DefaultBreakerConfig()
	}
	return &ProbeBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs the operation under breaker protection.
func (b *ProbeBreaker) Execute(ctx context.Context, operation func(context.Context) error) error {
	if !b.allow() {
		return ErrBreakerOpen
	}

	err := operation(ctx)
	b.record(err)
	return err
}

// State returns the current breaker state.
func (b *ProbeBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *ProbeBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if time.Since(b.lastFailureTime) >= b.config.ResetTimeout {
			b.state = StateHalfOpen
			return true
		}
		return false
	}
	return true
}

func (b *ProbeBreaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.state = StateClosed
		b.failureCount = 0
		return
	}

	b.failureCount++
	b.lastFailureTime = time.Now()
	if b.state == StateHalfOpen || b.failureCount >= b.config.FailureThreshold {
		b.state = StateOpen
	}
}
