// Package errors provides structured error handling for the feed engine.
// It defines error types with codes, messages, causes, and contextual
// information to facilitate debugging across the application layers.
package errors

import (
	"fmt"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodePartition   ErrorCode = "PARTITION_ERROR"
	ErrCodeSocialGraph ErrorCode = "SOCIAL_GRAPH_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeAnalytics   ErrorCode = "ANALYTICS_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// PartitionError creates an AppError for content partition query failures.
func PartitionError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodePartition,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// SocialGraphError creates an AppError for social graph lookup failures.
func SocialGraphError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeSocialGraph,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// AnalyticsError creates an AppError for analytics sink failures. These are
// always swallowed at the orchestrator boundary; the type exists so they
// are still inspectable in logs.
func AnalyticsError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeAnalytics,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// UnknownError creates an AppError for uncategorized failures.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
