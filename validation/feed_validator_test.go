package validation

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRequestValidator_Validate(t *testing.T) {
	validator := &FeedRequestValidator{}
	validViewer := uuid.New().String()

	tests := []struct {
		name      string
		input     interface{}
		wantValid bool
		wantField string
	}{
		{
			name: "valid request",
			input: map[string]interface{}{
				"viewer_id": validViewer,
				"feed_type": "forYou",
				"tags":      []string{"music", "travel"},
			},
			wantValid: true,
		},
		{
			name: "empty viewer id",
			input: map[string]interface{}{
				"viewer_id": "",
				"feed_type": "trending",
			},
			wantValid: false,
			wantField: "viewer_id",
		},
		{
			name: "malformed viewer id",
			input: map[string]interface{}{
				"viewer_id": "not-a-uuid",
				"feed_type": "trending",
			},
			wantValid: false,
			wantField: "viewer_id",
		},
		{
			name: "unknown feed type",
			input: map[string]interface{}{
				"viewer_id": validViewer,
				"feed_type": "explore",
			},
			wantValid: false,
			wantField: "feed_type",
		},
		{
			name: "empty tag rejected",
			input: map[string]interface{}{
				"viewer_id": validViewer,
				"feed_type": "forYou",
				"tags":      []string{"music", "  "},
			},
			wantValid: false,
			wantField: "tags",
		},
		{
			name: "overlong tag rejected",
			input: map[string]interface{}{
				"viewer_id": validViewer,
				"feed_type": "forYou",
				"tags":      []string{strings.Repeat("a", 65)},
			},
			wantValid: false,
			wantField: "tags",
		},
		{
			name:      "non-map input rejected",
			input:     "viewer_id=abc",
			wantValid: false,
			wantField: "params",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.Validate(context.Background(), tt.input)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, tt.wantField, result.Errors[0].Field)
			}
		})
	}
}

func TestFeedRequestValidator_TooManyTags(t *testing.T) {
	validator := &FeedRequestValidator{}

	tags := make([]string, maxInterestTags+1)
	for i := range tags {
		tags[i] = "tag"
	}

	result := validator.Validate(context.Background(), map[string]interface{}{
		"viewer_id": uuid.New().String(),
		"feed_type": "forYou",
		"tags":      tags,
	})

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "tags", result.Errors[0].Field)
}

func TestValidateFeedRequest(t *testing.T) {
	ctx := context.Background()

	err := ValidateFeedRequest(ctx, uuid.New().String(), "music", nil)
	assert.NoError(t, err)

	err = ValidateFeedRequest(ctx, "bogus", "music", nil)
	require.Error(t, err)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "feed_request_validation", verr.Type)
	assert.NotEmpty(t, verr.Errors)
}
