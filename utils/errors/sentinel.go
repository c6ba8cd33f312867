package errors

import (
	"errors"
)

// Sentinel errors for the feed engine failure taxonomy. These are base
// errors usable with errors.Is() and errors.As() across layers.
var (
	// ErrPartitionUnavailable means a single content-kind query failed.
	// Callers treat it as "zero items" for that kind, never as fatal.
	ErrPartitionUnavailable = errors.New("content partition unavailable")

	// ErrSocialGraphUnavailable means the follow set could not be
	// resolved. Fetchers degrade to a viewer-only author set.
	ErrSocialGraphUnavailable = errors.New("social graph unavailable")

	// ErrEngagementQueryUnavailable means at least one engagement-
	// annotated query failed. Trending switches wholesale to the recency
	// fallback; a partial engagement ranking is considered misleading.
	ErrEngagementQueryUnavailable = errors.New("engagement query unavailable")

	// ErrTotalFetchFailure means every sub-query for a requested page
	// failed. This is the only fetch error that reaches the caller.
	ErrTotalFetchFailure = errors.New("all feed sources failed")

	ErrInvalidInput     = errors.New("invalid input")
	ErrSessionNotFound  = errors.New("feed session not found")
	ErrSessionBusy      = errors.New("fetch already in flight for session")
	ErrSessionExhausted = errors.New("feed session has no more items")
)

// IsPartitionUnavailable checks whether an error is a per-partition failure.
func IsPartitionUnavailable(err error) bool {
	return errors.Is(err, ErrPartitionUnavailable)
}

// IsSocialGraphUnavailable checks whether the follow set lookup failed.
func IsSocialGraphUnavailable(err error) bool {
	return errors.Is(err, ErrSocialGraphUnavailable)
}

// IsEngagementQueryUnavailable checks for the trending optimized-path failure.
func IsEngagementQueryUnavailable(err error) bool {
	return errors.Is(err, ErrEngagementQueryUnavailable)
}

// IsTotalFetchFailure checks whether an entire page fetch failed.
func IsTotalFetchFailure(err error) bool {
	return errors.Is(err, ErrTotalFetchFailure)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSessionNotFound checks for an unknown or closed feed session.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// IsRetryable determines whether the caller can simply retry the fetch.
func IsRetryable(err error) bool {
	return IsTotalFetchFailure(err) ||
		IsPartitionUnavailable(err) ||
		IsSocialGraphUnavailable(err)
}
