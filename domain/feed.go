package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// FeedType selects the source fetcher strategy for a feed view.
type FeedType string

const (
	FeedForYou    FeedType = "forYou"
	FeedFollowing FeedType = "following"
	FeedTrending  FeedType = "trending"
	FeedMusic     FeedType = "music"
	FeedCollabs   FeedType = "collabs"
)

// ParseFeedType validates a feed type string coming from the outside.
func ParseFeedType(s string) (FeedType, error) {
	switch FeedType(s) {
	case FeedForYou, FeedFollowing, FeedTrending, FeedMusic, FeedCollabs:
		return FeedType(s), nil
	}
	return "", fmt.Errorf("unknown feed type: %q", s)
}

// ViewerContext carries who is looking at the feed and their declared
// interest tags. Tags influence inclusion in the for-you mode only.
type ViewerContext struct {
	ViewerID     uuid.UUID `json:"viewer_id"`
	InterestTags []string  `json:"interest_tags,omitempty"`
}

// FeedRequest is the stateless inbound call shape: one page of one feed
// mode for one viewer.
type FeedRequest struct {
	ViewerID uuid.UUID `json:"viewer_id"`
	FeedType FeedType  `json:"feed_type"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
	Tags     []string  `json:"tags,omitempty"`
}

// Viewer folds the request into the fetcher-facing viewer context.
func (r *FeedRequest) Viewer() ViewerContext {
	return ViewerContext{ViewerID: r.ViewerID, InterestTags: r.Tags}
}

// FeedPage is one fetched page. HasMore is a heuristic: an underfull page
// means the source is exhausted.
type FeedPage struct {
	Items   []*ContentItem `json:"items"`
	HasMore bool           `json:"has_more"`
}
