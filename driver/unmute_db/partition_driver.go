package unmute_db

import (
	"context"
	"errors"
	"fmt"

	"unmute/driver/models"
	"unmute/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Column lists per partition table, normalized into the shared row shape so
// one scan path serves every kind.
const (
	imageColumns = `id, author_id, created_at, tags, like_count, comment_count,
		url AS image_url, caption,
		NULL::text AS body,
		NULL::text AS video_url, NULL::text AS audio_ref, NULL::int AS duration_seconds,
		NULL::text AS title, NULL::uuid[] AS partner_ids`

	textColumns = `id, author_id, created_at, tags, like_count, comment_count,
		NULL::text AS image_url, NULL::text AS caption,
		body,
		NULL::text AS video_url, NULL::text AS audio_ref, NULL::int AS duration_seconds,
		NULL::text AS title, NULL::uuid[] AS partner_ids`

	reelColumns = `id, author_id, created_at, tags, like_count, comment_count,
		NULL::text AS image_url, NULL::text AS caption,
		NULL::text AS body,
		video_url, audio_ref, duration_seconds,
		NULL::text AS title, NULL::uuid[] AS partner_ids`

	collabColumns = `id, author_id, created_at, tags, like_count, comment_count,
		NULL::text AS image_url, NULL::text AS caption,
		NULL::text AS body,
		NULL::text AS video_url, NULL::text AS audio_ref, NULL::int AS duration_seconds,
		title, partner_ids`
)

type partitionTable struct {
	name    string
	columns string
	// textColumn is the column the tag-or-text fallback matches against,
	// empty when the kind has no matchable text.
	textColumn string
}

var partitionTables = map[string]partitionTable{
	"image":  {name: "images", columns: imageColumns, textColumn: "caption"},
	"text":   {name: "text_posts", columns: textColumns, textColumn: "body"},
	"reel":   {name: "reels", columns: reelColumns, textColumn: ""},
	"collab": {name: "collaborations", columns: collabColumns, textColumn: "title"},
}

func tableForKind(kind string) (partitionTable, error) {
	table, ok := partitionTables[kind]
	if !ok {
		return partitionTable{}, fmt.Errorf("no partition table for kind %q", kind)
	}
	return table, nil
}

// QueryRecent returns one kind's items, newest first.
func (r *FeedDBRepository) QueryRecent(ctx context.Context, kind string, limit, offset int) ([]*models.ContentRow, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		table.columns, table.name)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying recent content", "kind", kind, "error", err)
		return nil, fmt.Errorf("error querying recent %s content: %w", kind, err)
	}
	defer rows.Close()

	return scanContentRows(rows, kind, false)
}

// QueryByAuthors returns one kind's items authored by any of authorIDs,
// newest first.
func (r *FeedDBRepository) QueryByAuthors(ctx context.Context, kind string, authorIDs []uuid.UUID, limit, offset int) ([]*models.ContentRow, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE author_id = ANY($1) ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		table.columns, table.name)

	rows, err := r.db.Query(ctx, query, authorIDs, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying content by authors", "kind", kind, "authors", len(authorIDs), "error", err)
		return nil, fmt.Errorf("error querying %s content by authors: %w", kind, err)
	}
	defer rows.Close()

	return scanContentRows(rows, kind, false)
}

// QueryByTagOverlap returns one kind's items whose tag set overlaps tags,
// newest first.
func (r *FeedDBRepository) QueryByTagOverlap(ctx context.Context, kind string, tags []string, limit, offset int) ([]*models.ContentRow, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tags && $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		table.columns, table.name)

	rows, err := r.db.Query(ctx, query, tags, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying content by tag overlap", "kind", kind, "error", err)
		return nil, fmt.Errorf("error querying %s content by tags: %w", kind, err)
	}
	defer rows.Close()

	return scanContentRows(rows, kind, false)
}

// QueryByTagOrText returns one kind's items carrying the token as a tag or
// in their text column, newest first.
func (r *FeedDBRepository) QueryByTagOrText(ctx context.Context, kind string, token string, limit, offset int) ([]*models.ContentRow, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	predicate := `$1 = ANY(tags)`
	if table.textColumn != "" {
		predicate = fmt.Sprintf(`($1 = ANY(tags) OR %s ILIKE '%%' || $1 || '%%')`, table.textColumn)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		table.columns, table.name, predicate)

	rows, err := r.db.Query(ctx, query, token, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying content by tag or text", "kind", kind, "token", token, "error", err)
		return nil, fmt.Errorf("error querying %s content by tag or text: %w", kind, err)
	}
	defer rows.Close()

	return scanContentRows(rows, kind, false)
}

// QueryWithEngagement returns one kind's items annotated with the computed
// engagement score, highest score first with recency tiebreak.
func (r *FeedDBRepository) QueryWithEngagement(ctx context.Context, kind string, limit, offset int) ([]*models.ContentRow, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s, (like_count + comment_count)::float8 AS engagement_score
		FROM %s ORDER BY engagement_score DESC, created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		table.columns, table.name)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying content with engagement", "kind", kind, "error", err)
		return nil, fmt.Errorf("error querying %s content with engagement: %w", kind, err)
	}
	defer rows.Close()

	return scanContentRows(rows, kind, true)
}

// QueryRecentWithAudio returns reels with a non-empty audio reference,
// newest first.
func (r *FeedDBRepository) QueryRecentWithAudio(ctx context.Context, limit, offset int) ([]*models.ContentRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM reels WHERE audio_ref IS NOT NULL AND audio_ref <> ''
		ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, reelColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.SafeErrorContext(ctx, "error querying reels with audio", "error", err)
		return nil, fmt.Errorf("error querying reels with audio: %w", err)
	}
	defer rows.Close()

	return scanContentRows(rows, "reel", false)
}

// HasCollabPartition probes whether the dedicated collaboration table
// exists in the current schema.
func (r *FeedDBRepository) HasCollabPartition(ctx context.Context) (bool, error) {
	query := `SELECT to_regclass('public.collaborations') IS NOT NULL`

	var exists bool
	if err := r.db.QueryRow(ctx, query).Scan(&exists); err != nil {
		logger.SafeErrorContext(ctx, "error probing collaboration partition", "error", err)
		return false, fmt.Errorf("error probing collaboration partition: %w", err)
	}

	return exists, nil
}

func scanContentRows(rows pgx.Rows, kind string, withEngagement bool) ([]*models.ContentRow, error) {
	var result []*models.ContentRow

	for rows.Next() {
		row := &models.ContentRow{Kind: kind}

		dest := []any{
			&row.ID, &row.AuthorID, &row.CreatedAt, &row.Tags,
			&row.LikeCount, &row.CommentCount,
			&row.ImageURL, &row.Caption,
			&row.Body,
			&row.VideoURL, &row.AudioRef, &row.DurationSeconds,
			&row.Title, &row.PartnerIDs,
		}
		if withEngagement {
			dest = append(dest, &row.EngagementScore)
		}

		if err := rows.Scan(dest...); err != nil {
			logger.SafeError("error scanning content row", "kind", kind, "error", err)
			return nil, errors.New("error scanning content row")
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}

	return result, nil
}
