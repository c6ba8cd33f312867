package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentRow is the flat row shape shared by every partition query. Kind
// decides which of the nullable per-kind columns are populated.
type ContentRow struct {
	ID           uuid.UUID  `db:"id"`
	Kind         string     `db:"kind"`
	AuthorID     uuid.UUID  `db:"author_id"`
	CreatedAt    time.Time  `db:"created_at"`
	Tags         []string   `db:"tags"`
	LikeCount    int        `db:"like_count"`
	CommentCount int        `db:"comment_count"`

	// Populated only by the engagement-annotated query.
	EngagementScore *float64 `db:"engagement_score"`

	// image
	ImageURL *string `db:"image_url"`
	Caption  *string `db:"caption"`

	// text
	Body *string `db:"body"`

	// reel
	VideoURL        *string `db:"video_url"`
	AudioRef        *string `db:"audio_ref"`
	DurationSeconds *int    `db:"duration_seconds"`

	// collab
	Title      *string     `db:"title"`
	PartnerIDs []uuid.UUID `db:"partner_ids"`
}
