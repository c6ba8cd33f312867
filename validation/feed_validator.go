package validation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"unmute/domain"
)

// maxInterestTags bounds the tag list a single request may carry.
const maxInterestTags = 20

// maxTagLength bounds an individual tag.
const maxTagLength = 64

// FeedRequestValidator validates the query parameters of a feed page
// request: viewer identity, feed mode, and interest tags.
type FeedRequestValidator struct{}

func (v *FeedRequestValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
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

	if viewerField, exists := inputMap["viewer_id"]; exists {
		if err := v.validateViewerID(viewerField); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *err)
		}
	}

	if feedTypeField, exists := inputMap["feed_type"]; exists {
		if err := v.validateFeedType(feedTypeField); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *err)
		}
	}

	if tagsField, exists := inputMap["tags"]; exists {
		if err := v.validateTags(tagsField); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, *err)
		}
	}

	return result
}

func (v *FeedRequestValidator) validateViewerID(viewerField interface{}) *ValidationError {
	viewerStr, ok := viewerField.(string)
	if !ok {
		return &ValidationError{
			Field:   "viewer_id",
			Message: "Viewer ID parameter must be a string",
		}
	}

	if strings.TrimSpace(viewerStr) == "" {
		return &ValidationError{
			Field:   "viewer_id",
			Message: "Viewer ID cannot be empty",
		}
	}

	if _, err := uuid.Parse(viewerStr); err != nil {
		return &ValidationError{
			Field:   "viewer_id",
			Message: "Viewer ID must be a valid UUID",
			Value:   viewerStr,
		}
	}

	return nil
}

func (v *FeedRequestValidator) validateFeedType(feedTypeField interface{}) *ValidationError {
	feedTypeStr, ok := feedTypeField.(string)
	if !ok {
		return &ValidationError{
			Field:   "feed_type",
			Message: "Feed type parameter must be a string",
		}
	}

	if _, err := domain.ParseFeedType(feedTypeStr); err != nil {
		return &ValidationError{
			Field:   "feed_type",
			Message: "Unknown feed type",
			Value:   feedTypeStr,
		}
	}

	return nil
}

func (v *FeedRequestValidator) validateTags(tagsField interface{}) *ValidationError {
	tags, ok := tagsField.([]string)
	if !ok {
		return &ValidationError{
			Field:   "tags",
			Message: "Tags parameter must be a list of strings",
		}
	}

	if len(tags) > maxInterestTags {
		return &ValidationError{
			Field:   "tags",
			Message: "Too many interest tags (maximum 20)",
		}
	}

	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return &ValidationError{
				Field:   "tags",
				Message: "Tags cannot be empty",
			}
		}
		if len(tag) > maxTagLength {
			return &ValidationError{
				Field:   "tags",
				Message: "Tag too long (maximum 64 characters)",
				Value:   tag,
			}
		}
	}

	return nil
}

// ValidateFeedRequest validates the identity and mode parameters of a feed
// page request.
func ValidateFeedRequest(ctx context.Context, viewerID, feedType string, tags []string) error {
	validator := &FeedRequestValidator{}
	inputMap := map[string]interface{}{
		"viewer_id": viewerID,
		"feed_type": feedType,
		"tags":      tags,
	}
	result := validator.Validate(ctx, inputMap)

	if !result.Valid {
		return &ValidationErrorType{
			Type:   "feed_request_validation",
			Fields: map[string]interface{}{"viewer_id": viewerID, "feed_type": feedType, "validation_type": "feed_request"},
			Errors: result.Errors,
		}
	}
	return nil
}
