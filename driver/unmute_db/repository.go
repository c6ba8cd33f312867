package unmute_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// FeedDBRepository executes the content partition, social graph, and
// analytics queries against Postgres.
type FeedDBRepository struct {
	db Querier
}

func NewFeedDBRepository(db Querier) *FeedDBRepository {
	return &FeedDBRepository{db: db}
}
