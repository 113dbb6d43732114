// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines interface for follow-graph operations
type FollowRepository interface {
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	Follow(ctx context.Context, followerID, followeeID uint) error
	Unfollow(ctx context.Context, followerID, followeeID uint) error
	Followers(ctx context.Context, userID uint) ([]models.PublicProfile, error)
	Following(ctx context.Context, userID uint) ([]models.PublicProfile, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	err := r.db.WithContext(ctx).Create(&models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}).Error
	if err != nil && isUniqueConstraintError(err) {
		return models.NewConflictError("Already following this user")
	}
	return err
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]models.PublicProfile, error) {
	var profiles []models.PublicProfile
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id, users.name, users.image_url").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at desc").
		Scan(&profiles).Error
	return profiles, err
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]models.PublicProfile, error) {
	var profiles []models.PublicProfile
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.id, users.name, users.image_url").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at desc").
		Scan(&profiles).Error
	return profiles, err
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}
