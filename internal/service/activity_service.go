package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ActivityService aggregates a user's footprint: what they posted, liked,
// commented on and shared.
type ActivityService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	shareRepo   repository.ShareRepository
}

func NewActivityService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	shareRepo repository.ShareRepository,
) *ActivityService {
	return &ActivityService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		shareRepo:   shareRepo,
	}
}

// PostActivity returns the user's own posts, newest first. qty <= 0 means no
// limit.
func (s *ActivityService) PostActivity(ctx context.Context, userID uint, qty int) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, qty, 0)
}

// LikeActivity returns the posts the user liked, most recent like first.
func (s *ActivityService) LikeActivity(ctx context.Context, userID uint, qty int) ([]*models.Post, error) {
	return s.postRepo.GetLikedPosts(ctx, userID, qty, 0)
}

// CommentActivity returns the parent posts of the user's comments, newest
// comment first, each post at most once.
func (s *ActivityService) CommentActivity(ctx context.Context, userID uint, qty int) ([]*models.Post, error) {
	comments, err := s.commentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	postIDs := dedupIDs(commentPostIDs(comments), qty)
	return s.postsInOrder(ctx, postIDs)
}

// ShareActivity returns the parent posts of the user's shares, newest share
// first, each post at most once.
func (s *ActivityService) ShareActivity(ctx context.Context, userID uint, qty int) ([]*models.Post, error) {
	shares, err := s.shareRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(shares))
	for _, sh := range shares {
		ids = append(ids, sh.PostID)
	}
	return s.postsInOrder(ctx, dedupIDs(ids, qty))
}

// postsInOrder fetches the posts for the given IDs and returns them in the
// same order. IDs whose post no longer exists are skipped.
func (s *ActivityService) postsInOrder(ctx context.Context, ids []uint) ([]*models.Post, error) {
	if len(ids) == 0 {
		return []*models.Post{}, nil
	}

	posts, err := s.postRepo.GetByIDs(ctx, ids, 0)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	ordered := make([]*models.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func commentPostIDs(comments []*models.Comment) []uint {
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.PostID)
	}
	return ids
}

// dedupIDs keeps the first occurrence of each ID, preserving order, and
// truncates to qty when qty > 0.
func dedupIDs(ids []uint, qty int) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if qty > 0 && len(out) >= qty {
			break
		}
	}
	return out
}
