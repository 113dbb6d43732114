package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_IsFollowing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	following, err := repo.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_FollowUnfollow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(t, repo.Follow(ctx, 1, 2))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "follows"`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Unfollow(ctx, 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_FollowingIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(`SELECT "followee_id" FROM "follows"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"followee_id"}).AddRow(2).AddRow(5))

	ids, err := repo.FollowingIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
