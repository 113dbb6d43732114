package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

type UpdateProfileInput struct {
	UserID     uint
	Username   string
	Name       string
	About      string
	Location   string
	Education  string
	Occupation string
	ImageURL   string
}

type ChangePasswordInput struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

// Profile is the public view of a user together with their social context.
type Profile struct {
	User       *models.User           `json:"user"`
	Posts      []*models.Post         `json:"posts"`
	LikedPosts []*models.Post         `json:"likedPosts"`
	Followers  []models.PublicProfile `json:"followers"`
	Following  []models.PublicProfile `json:"following"`
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile assembles the full profile page: the user, their posts, the
// posts they liked, and both sides of their follow graph.
func (s *UserService) GetProfile(ctx context.Context, userID, currentUserID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID, 0, currentUserID)
	if err != nil {
		return nil, err
	}
	liked, err := s.postRepo.GetLikedPosts(ctx, userID, 0, currentUserID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:       user,
		Posts:      posts,
		LikedPosts: liked,
		Followers:  followers,
		Following:  following,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("Username already exists")
		}
		user.Username = in.Username
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.About != "" {
		user.About = in.About
	}
	if in.Location != "" {
		user.Location = in.Location
	}
	if in.Education != "" {
		user.Education = in.Education
	}
	if in.Occupation != "" {
		user.Occupation = in.Occupation
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(in.NewPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, userID)
}

// ToggleFollow flips the follow edge from followerID to followeeID and
// reports whether the edge exists afterwards.
func (s *UserService) ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if followerID == followeeID {
		return false, models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return false, err
	}

	following, err := s.followRepo.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, err
	}

	if following {
		if err := s.followRepo.Unfollow(ctx, followerID, followeeID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.followRepo.Follow(ctx, followerID, followeeID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}

func (s *UserService) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followRepo.FollowingIDs(ctx, userID)
}
