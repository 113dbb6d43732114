// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// ShareRepository defines interface for share operations
type ShareRepository interface {
	Create(ctx context.Context, share *models.Share) error
	GetByID(ctx context.Context, id uint) (*models.Share, error)
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Share, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Share, error)
	Delete(ctx context.Context, id uint) error
}

type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(ctx context.Context, share *models.Share) error {
	if err := r.db.WithContext(ctx).Create(share).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Post already shared")
		}
		return err
	}
	cache.InvalidatePost(ctx, share.PostID)
	return nil
}

func (r *shareRepository) GetByID(ctx context.Context, id uint) (*models.Share, error) {
	var share models.Share
	if err := r.db.WithContext(ctx).Preload("User").First(&share, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Share", id)
		}
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Share, error) {
	var share models.Share
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Share, error) {
	var shares []*models.Share
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&shares).Error
	return shares, err
}

func (r *shareRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Share{}, id).Error
}
