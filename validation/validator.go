package validation

import (
	"context"
	"fmt"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Validator interface {
	Validate(ctx context.Context, value interface{}) ValidationResult
}

// ValidationErrorType represents a typed validation error
type ValidationErrorType struct {
	Type   string                 `json:"type"`
	Fields map[string]interface{} `json:"fields"`
	Errors []ValidationError      `json:"errors"`
}

func (e *ValidationErrorType) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("validation failed: %s", e.Type)
}

// AsValidationError attempts to convert an error to a ValidationErrorType
func AsValidationError(err error) (*ValidationErrorType, bool) {
	if verr, ok := err.(*ValidationErrorType); ok {
		return verr, true
	}
	return nil, false
}
