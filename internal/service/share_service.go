package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type ShareService struct {
	shareRepo repository.ShareRepository
	postRepo  repository.PostRepository
}

type SharePostInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// DeleteShareInput carries the caller's claim about which user and post the
// share belongs to; both must match the stored row.
type DeleteShareInput struct {
	UserID  uint
	ShareID uint
	PostID  uint
}

func NewShareService(
	shareRepo repository.ShareRepository,
	postRepo repository.PostRepository,
) *ShareService {
	return &ShareService{
		shareRepo: shareRepo,
		postRepo:  postRepo,
	}
}

// SharePost records a share. A user can share a given post at most once.
func (s *ShareService) SharePost(ctx context.Context, in SharePostInput) (*models.Share, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	if existing, err := s.shareRepo.GetByUserAndPost(ctx, in.UserID, in.PostID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Post already shared")
	}

	share := &models.Share{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}
	return s.shareRepo.GetByID(ctx, share.ID)
}

// DeleteShare removes a share after verifying the stored row still links the
// claimed user and post.
func (s *ShareService) DeleteShare(ctx context.Context, in DeleteShareInput) error {
	share, err := s.shareRepo.GetByID(ctx, in.ShareID)
	if err != nil {
		return err
	}

	if share.UserID != in.UserID || share.PostID != in.PostID {
		return models.NewIntegrityMismatchError("Share does not match the given user and post")
	}

	return s.shareRepo.Delete(ctx, in.ShareID)
}

// CheckShares returns a user's shares together with the set of post IDs they
// cover, newest first.
func (s *ShareService) CheckShares(ctx context.Context, userID uint) ([]*models.Share, []uint, error) {
	shares, err := s.shareRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	postIDs := make([]uint, 0, len(shares))
	for _, sh := range shares {
		postIDs = append(postIDs, sh.PostID)
	}
	return shares, postIDs, nil
}
