package feed_usecase

import (
	"context"
	"fmt"

	"unmute/domain"
	"unmute/port/content_partition_port"
	"unmute/utils/errors"
)

// MusicFetcher serves reels carrying an audio track, newest first. Single
// source and single query shape, so there is no fallback path.
type MusicFetcher struct {
	partitions content_partition_port.ContentPartitionPort
}

func NewMusicFetcher(partitions content_partition_port.ContentPartitionPort) *MusicFetcher {
	return &MusicFetcher{partitions: partitions}
}

func (f *MusicFetcher) Fetch(ctx context.Context, viewer domain.ViewerContext, limit, offset int) ([]*domain.ContentItem, error) {
	items, err := f.partitions.QueryRecentWithAudio(ctx, limit, offset)
	if err != nil {
		// The only sub-query of this mode failed, so the whole page did.
		return nil, fmt.Errorf("%w: %w", errors.ErrTotalFetchFailure, err)
	}
	return truncate(items, limit), nil
}
