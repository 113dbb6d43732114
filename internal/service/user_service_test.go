package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(userRepo *userRepoStub, followRepo *followRepoStub) *UserService {
	return NewUserService(userRepo, noopPostRepo(), followRepo)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("username taken is a conflict", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice"}, nil
		}
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 99, Username: "bob"}, nil
		}
		svc := newUserService(repo, noopFollowRepo())
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Username: "bob"})
		assertConflictError(t, err)
	})

	t.Run("unchanged username skips the taken check", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice"}, nil
		}
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			t.Fatal("GetByUsername should not be called")
			return nil, nil
		}
		svc := newUserService(repo, noopFollowRepo())
		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Username: "alice", About: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "hi", user.About)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", Location: "Berlin"}, nil
		}
		svc := newUserService(repo, noopFollowRepo())
		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Occupation: "engineer"})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", user.Location)
		assert.Equal(t, "engineer", user.Occupation)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Old123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	withUser := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Password: string(hashed)}, nil
		}
		return repo
	}

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()
		svc := newUserService(withUser(), noopFollowRepo())
		err := svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "Nope123", NewPassword: "New456x"})
		assertAppErrorCode(t, err, models.CodeUnauthorized)
	})

	t.Run("weak new password", func(t *testing.T) {
		t.Parallel()
		svc := newUserService(withUser(), noopFollowRepo())
		err := svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "Old123", NewPassword: "weak"})
		assertValidationError(t, err)
	})

	t.Run("success rehashes", func(t *testing.T) {
		t.Parallel()
		repo := withUser()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := newUserService(repo, noopFollowRepo())
		require.NoError(t, svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "Old123", NewPassword: "New456x"}))
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("New456x")))
	})
}

func TestUserService_ToggleFollow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("self follow is invalid", func(t *testing.T) {
		t.Parallel()
		svc := newUserService(noopUserRepo(), noopFollowRepo())
		_, err := svc.ToggleFollow(ctx, 1, 1)
		assertValidationError(t, err)
	})

	t.Run("toggle alternates", func(t *testing.T) {
		t.Parallel()
		following := false
		followRepo := noopFollowRepo()
		followRepo.isFollowingFn = func(_ context.Context, _, _ uint) (bool, error) {
			return following, nil
		}
		followRepo.followFn = func(_ context.Context, _, _ uint) error {
			following = true
			return nil
		}
		followRepo.unfollowFn = func(_ context.Context, _, _ uint) error {
			following = false
			return nil
		}
		svc := newUserService(noopUserRepo(), followRepo)

		now, err := svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, now, "first toggle follows")

		now, err = svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, now, "second toggle unfollows")

		now, err = svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, now, "third toggle follows again")
	})

	t.Run("missing followee propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := newUserService(repo, noopFollowRepo())
		_, err := svc.ToggleFollow(ctx, 1, 99)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	postRepo := noopPostRepo()
	postRepo.getByUserIDFn = func(_ context.Context, userID uint, _ int, _ uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 1, UserID: userID}}, nil
	}
	postRepo.getLikedPostsFn = func(_ context.Context, _ uint, _ int, _ uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 9}}, nil
	}
	followRepo := noopFollowRepo()
	followRepo.followersFn = func(_ context.Context, _ uint) ([]models.PublicProfile, error) {
		return []models.PublicProfile{{ID: 2, Name: "Bob"}}, nil
	}

	svc := NewUserService(userRepo, postRepo, followRepo)
	profile, err := svc.GetProfile(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(1), profile.User.ID)
	require.Len(t, profile.Posts, 1)
	require.Len(t, profile.LikedPosts, 1)
	require.Len(t, profile.Followers, 1)
	assert.Empty(t, profile.Following)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	cascaded := false
	repo := noopUserRepo()
	repo.deleteCascadeFn = func(_ context.Context, _ uint) error {
		cascaded = true
		return nil
	}
	svc := newUserService(repo, noopFollowRepo())
	require.NoError(t, svc.DeleteUser(context.Background(), 1))
	assert.True(t, cascaded)
}
