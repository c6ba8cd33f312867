package rest

import (
	"github.com/google/uuid"

	"unmute/domain"
	"unmute/usecase/feed_usecase"
)

// FeedPageResponse is the wire shape of one fetched page.
type FeedPageResponse struct {
	Items   []*domain.ContentItem `json:"items"`
	HasMore bool                  `json:"has_more"`
}

// OpenSessionRequest is the body of POST /v1/feeds/sessions.
type OpenSessionRequest struct {
	ViewerID string   `json:"viewer_id"`
	FeedType string   `json:"feed_type"`
	Limit    int      `json:"limit,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// SessionResponse is the wire shape of a feed session and its accumulated
// timeline.
type SessionResponse struct {
	SessionID uuid.UUID             `json:"session_id"`
	FeedType  domain.FeedType       `json:"feed_type"`
	Limit     int                   `json:"limit"`
	Items     []*domain.ContentItem `json:"items"`
	HasMore   bool                  `json:"has_more"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func newFeedPageResponse(page *domain.FeedPage) *FeedPageResponse {
	return &FeedPageResponse{
		Items:   page.Items,
		HasMore: page.HasMore,
	}
}

func newSessionResponse(session *feed_usecase.FeedSession, page *domain.FeedPage) *SessionResponse {
	return &SessionResponse{
		SessionID: session.ID,
		FeedType:  session.FeedType,
		Limit:     session.Limit,
		Items:     page.Items,
		HasMore:   page.HasMore,
	}
}
