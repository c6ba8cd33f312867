package unmute_db

import (
	"context"
	"fmt"

	"unmute/utils/logger"

	"github.com/google/uuid"
)

// GetFollowing returns the IDs the viewer follows, most recent follow
// first.
func (r *FeedDBRepository) GetFollowing(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying following set", "viewer_id", viewerID, "error", err)
		return nil, fmt.Errorf("error querying following set: %w", err)
	}
	defer rows.Close()

	var following []uuid.UUID
	for rows.Next() {
		var followeeID uuid.UUID
		if err := rows.Scan(&followeeID); err != nil {
			logger.SafeError("error scanning followee id", "error", err)
			return nil, fmt.Errorf("error scanning followee id: %w", err)
		}
		following = append(following, followeeID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating following set: %w", err)
	}

	return following, nil
}
