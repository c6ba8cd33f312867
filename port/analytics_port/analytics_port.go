package analytics_port

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=analytics_port.go -destination=../../mocks/mock_analytics_port.go -package=mocks

// AnalyticsPort is the fire-and-forget event sink. Errors are logged and
// discarded by the caller; they never affect feed correctness.
type AnalyticsPort interface {
	Record(ctx context.Context, viewerID uuid.UUID, eventType string, payload map[string]any) error
}
