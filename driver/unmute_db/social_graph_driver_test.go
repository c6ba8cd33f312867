package unmute_db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedDBRepository_GetFollowing(t *testing.T) {
	mock, repo := newMockRepo(t)

	viewerID := uuid.New()
	followed := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	rows := pgxmock.NewRows([]string{"followee_id"})
	for _, id := range followed {
		rows.AddRow(id)
	}

	mock.ExpectQuery(`SELECT followee_id FROM follows WHERE follower_id = \$1 ORDER BY created_at DESC`).
		WithArgs(viewerID).
		WillReturnRows(rows)

	got, err := repo.GetFollowing(context.Background(), viewerID)

	require.NoError(t, err)
	assert.Equal(t, followed, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedDBRepository_GetFollowing_Empty(t *testing.T) {
	mock, repo := newMockRepo(t)

	viewerID := uuid.New()
	mock.ExpectQuery(`SELECT followee_id FROM follows`).
		WithArgs(viewerID).
		WillReturnRows(pgxmock.NewRows([]string{"followee_id"}))

	got, err := repo.GetFollowing(context.Background(), viewerID)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeedDBRepository_GetFollowing_QueryError(t *testing.T) {
	mock, repo := newMockRepo(t)

	viewerID := uuid.New()
	mock.ExpectQuery(`SELECT followee_id FROM follows`).
		WithArgs(viewerID).
		WillReturnError(assert.AnError)

	_, err := repo.GetFollowing(context.Background(), viewerID)
	assert.Error(t, err)
}
