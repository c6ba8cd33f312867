package validation

import (
	"context"
	"strconv"
	"strings"
)

// hardMaxLimit is the syntactic ceiling for a limit parameter. The
// configured per-deployment maximum is enforced later, at the engine
// boundary.
const hardMaxLimit = 1000

type PaginationValidator struct{}

func (v *PaginationValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	inputMap, ok := value.(map[string]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "params",
			Message: "Query parameters must be a valid object",
		})
		return result
	}

	if limitField, exists := inputMap["limit"]; exists {
		if err := v.validateLimit(limitField); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *err)
		}
	}

	if offsetField, exists := inputMap["offset"]; exists {
		if err := v.validateOffset(offsetField); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *err)
		}
	}

	return result
}

func (v *PaginationValidator) validateLimit(limitField interface{}) *ValidationError {
	limitStr, ok := limitField.(string)
	if !ok {
		return &ValidationError{
			Field:   "limit",
			Message: "Limit parameter must be a string",
		}
	}

	// An absent limit falls back to the configured default.
	if strings.TrimSpace(limitStr) == "" {
		return nil
	}

	limit, err := strconv.ParseInt(strings.TrimSpace(limitStr), 10, 64)
	if err != nil {
		return &ValidationError{
			Field:   "limit",
			Message: "Limit must be a valid integer",
			Value:   limitStr,
		}
	}

	if limit <= 0 {
		return &ValidationError{
			Field:   "limit",
			Message: "Limit must be a positive integer",
			Value:   limitStr,
		}
	}

	if limit > hardMaxLimit {
		return &ValidationError{
			Field:   "limit",
			Message: "Limit too large (maximum 1000)",
			Value:   limitStr,
		}
	}

	return nil
}

func (v *PaginationValidator) validateOffset(offsetField interface{}) *ValidationError {
	offsetStr, ok := offsetField.(string)
	if !ok {
		return &ValidationError{
			Field:   "offset",
			Message: "Offset parameter must be a string",
		}
	}

	if strings.TrimSpace(offsetStr) == "" {
		return nil
	}

	offset, err := strconv.ParseInt(strings.TrimSpace(offsetStr), 10, 64)
	if err != nil {
		return &ValidationError{
			Field:   "offset",
			Message: "Offset must be a valid integer",
			Value:   offsetStr,
		}
	}

	if offset < 0 {
		return &ValidationError{
			Field:   "offset",
			Message: "Offset must be a non-negative integer",
			Value:   offsetStr,
		}
	}

	return nil
}

// ValidatePagination validates already-parsed pagination parameters.
func ValidatePagination(ctx context.Context, limit, offset int) error {
	result := ValidationResult{Valid: true}

	if limit < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "limit",
			Message: "limit must be positive",
		})
	}

	if limit > hardMaxLimit {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "limit",
			Message: "limit exceeds maximum",
		})
	}

	if offset < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "offset",
			Message: "offset must be non-negative",
		})
	}

	if !result.Valid {
		return &ValidationErrorType{
			Type:   "pagination_validation",
			Fields: map[string]interface{}{"limit": limit, "offset": offset, "validation_type": "pagination"},
			Errors: result.Errors,
		}
	}
	return nil
}
