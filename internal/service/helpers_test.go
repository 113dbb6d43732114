package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/require"
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertPermissionDeniedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodePermissionDenied)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeConflict)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	getByIDsFn      func(context.Context, []uint, uint) ([]*models.Post, error)
	getByUserIDFn   func(context.Context, uint, int, uint) ([]*models.Post, error)
	getLikedPostsFn func(context.Context, uint, int, uint) ([]*models.Post, error)
	listFn          func(context.Context, int, int, uint) ([]*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	deleteCascadeFn func(context.Context, uint) error
	isLikedFn       func(context.Context, uint, uint) (bool, error)
	likeFn          func(context.Context, uint, uint) error
	unlikeFn        func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByIDs(ctx context.Context, ids []uint, currentUserID uint) ([]*models.Post, error) {
	return s.getByIDsFn(ctx, ids, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, currentUserID)
}
func (s *postRepoStub) GetLikedPosts(ctx context.Context, userID uint, limit int, currentUserID uint) ([]*models.Post, error) {
	return s.getLikedPostsFn(ctx, userID, limit, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		getByIDsFn: func(_ context.Context, _ []uint, _ uint) ([]*models.Post, error) { return nil, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		getLikedPostsFn: func(_ context.Context, _ uint, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		listFn:          func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
		isLikedFn:       func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:          func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:        func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	listByUserFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Comment, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listByUserFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// shareRepoStub is a stub for repository.ShareRepository.
type shareRepoStub struct {
	createFn           func(context.Context, *models.Share) error
	getByIDFn          func(context.Context, uint) (*models.Share, error)
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Share, error)
	listByUserFn       func(context.Context, uint) ([]*models.Share, error)
	deleteFn           func(context.Context, uint) error
}

func (s *shareRepoStub) Create(ctx context.Context, share *models.Share) error {
	return s.createFn(ctx, share)
}
func (s *shareRepoStub) GetByID(ctx context.Context, id uint) (*models.Share, error) {
	return s.getByIDFn(ctx, id)
}
func (s *shareRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Share, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *shareRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Share, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *shareRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopShareRepo() *shareRepoStub {
	return &shareRepoStub{
		createFn:           func(_ context.Context, _ *models.Share) error { return nil },
		getByIDFn:          func(_ context.Context, id uint) (*models.Share, error) { return &models.Share{ID: id}, nil },
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Share, error) { return nil, nil },
		listByUserFn:       func(_ context.Context, _ uint) ([]*models.Share, error) { return nil, nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	followFn       func(context.Context, uint, uint) error
	unfollowFn     func(context.Context, uint, uint) error
	followersFn    func(context.Context, uint) ([]models.PublicProfile, error)
	followingFn    func(context.Context, uint) ([]models.PublicProfile, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.PublicProfile, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.PublicProfile, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		isFollowingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followFn:       func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:     func(_ context.Context, _, _ uint) error { return nil },
		followersFn:    func(_ context.Context, _ uint) ([]models.PublicProfile, error) { return nil, nil },
		followingFn:    func(_ context.Context, _ uint) ([]models.PublicProfile, error) { return nil, nil },
		followingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteCascadeFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}
