package database

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "posts", "comments", "likes", "shares", "follows"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestLikeUniqueConstraint(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.Like{UserID: 1, PostID: 2}).Error)
	assert.Error(t, db.Create(&models.Like{UserID: 1, PostID: 2}).Error)
	assert.NoError(t, db.Create(&models.Like{UserID: 1, PostID: 3}).Error)
}

func TestFollowUniqueConstraint(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&models.Follow{FollowerID: 1, FolloweeID: 2}).Error)
	assert.Error(t, db.Create(&models.Follow{FollowerID: 1, FolloweeID: 2}).Error)
	assert.NoError(t, db.Create(&models.Follow{FollowerID: 2, FolloweeID: 1}).Error)
}
