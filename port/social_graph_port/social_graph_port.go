package social_graph_port

import (
	"context"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=social_graph_port.go -destination=../../mocks/mock_social_graph_port.go -package=mocks

// SocialGraphPort resolves the follow relationships of a viewer. Failure is
// surfaced to the calling fetcher, which degrades to a viewer-only author
// set rather than aborting.
type SocialGraphPort interface {
	GetFollowing(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error)
}
