package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ContentKind tags which partition produced an item and which per-kind
// rules apply to it.
type ContentKind string

const (
	KindImage  ContentKind = "image"
	KindText   ContentKind = "text"
	KindReel   ContentKind = "reel"
	KindCollab ContentKind = "collab"
)

// AllContentKinds lists every partition the engine fans out to.
var AllContentKinds = []ContentKind{KindImage, KindText, KindReel, KindCollab}

// ParseContentKind validates a kind string coming from the outside.
func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindImage, KindText, KindReel, KindCollab:
		return ContentKind(s), nil
	}
	return "", fmt.Errorf("unknown content kind: %q", s)
}

// ImageAttrs holds the image-specific part of a ContentItem.
type ImageAttrs struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// TextAttrs holds the text-post-specific part of a ContentItem.
type TextAttrs struct {
	Body string `json:"body"`
}

// ReelAttrs holds the short-video-specific part of a ContentItem.
// AudioRef is empty when the reel carries no attached audio track.
type ReelAttrs struct {
	VideoURL        string `json:"video_url"`
	AudioRef        string `json:"audio_ref"`
	DurationSeconds int    `json:"duration_seconds"`
}

// CollabAttrs holds the collaboration-specific part of a ContentItem.
type CollabAttrs struct {
	Title      string      `json:"title"`
	PartnerIDs []uuid.UUID `json:"partner_ids"`
}

// ContentItem is the unifying entity across content partitions. Exactly one
// of the per-kind attribute pointers is non-nil, matching Kind.
//
// IDs are unique within a partition only; two partitions may hand out the
// same ID for different items, so identity is always the (Kind, ID) pair.
type ContentItem struct {
	ID        uuid.UUID   `json:"id"`
	Kind      ContentKind `json:"kind"`
	AuthorID  uuid.UUID   `json:"author_id"`
	CreatedAt time.Time   `json:"created_at"`
	Tags      []string    `json:"tags,omitempty"`

	LikeCount    int `json:"like_count"`
	CommentCount int `json:"comment_count"`

	// EngagementScore is populated only by the engagement-annotated
	// partition query; nil means "not ranked".
	EngagementScore *float64 `json:"engagement_score,omitempty"`

	Image  *ImageAttrs  `json:"image,omitempty"`
	Text   *TextAttrs   `json:"text,omitempty"`
	Reel   *ReelAttrs   `json:"reel,omitempty"`
	Collab *CollabAttrs `json:"collab,omitempty"`
}

// ContentKey identifies an item across partitions.
type ContentKey struct {
	Kind ContentKind
	ID   uuid.UUID
}

// Key returns the dedup identity of the item.
func (c *ContentItem) Key() ContentKey {
	return ContentKey{Kind: c.Kind, ID: c.ID}
}

// RankingScore returns the value trending ranking sorts by. Items without a
// populated score rank as zero rather than being excluded.
func (c *ContentItem) RankingScore() float64 {
	if c.EngagementScore != nil {
		return *c.EngagementScore
	}
	return 0
}

// ComputeEngagement derives the popularity score from raw counters. The sum
// is unweighted and applies no recency decay: trending measures popularity,
// not velocity.
func ComputeEngagement(likeCount, commentCount int) float64 {
	return float64(likeCount + commentCount)
}

// HasAudio reports whether the item is a reel with an attached audio track.
func (c *ContentItem) HasAudio() bool {
	return c.Kind == KindReel && c.Reel != nil && c.Reel.AudioRef != ""
}
