package unmute_db

import (
	"context"
	"encoding/json"
	"fmt"

	"unmute/utils/logger"

	"github.com/google/uuid"
)

// InsertAnalyticsEvent appends one event row. Callers treat failures as
// non-fatal; the sink is best-effort.
func (r *FeedDBRepository) InsertAnalyticsEvent(ctx context.Context, viewerID uuid.UUID, eventType string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding analytics payload: %w", err)
	}

	query := `INSERT INTO analytics_events (user_id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())`

	if _, err := r.db.Exec(ctx, query, viewerID, eventType, body); err != nil {
		logger.SafeErrorContext(ctx, "error inserting analytics event", "event_type", eventType, "error", err)
		return fmt.Errorf("error inserting analytics event: %w", err)
	}

	return nil
}
