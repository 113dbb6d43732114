package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
}

type SignupInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	// LoginName accepts a username or an email address.
	LoginName string
	Password  string
}

type GoogleAuthInput struct {
	Email string
	Name  string
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		ImageURL: models.DefaultAvatarURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	loginName := strings.TrimSpace(in.LoginName)
	if loginName == "" || in.Password == "" {
		return nil, models.NewValidationError("Login name and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, loginName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(loginName))
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GoogleAuth finds the user by their verified Google email, creating an
// account on first sign-in.
func (s *AuthService) GoogleAuth(ctx context.Context, in GoogleAuthInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email[:strings.IndexByte(email, '@')]
	}

	username := deriveUsername(email)
	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		username = username + "_" + uuid.NewString()[:8]
	}

	user = &models.User{
		Username: username,
		Name:     name,
		Email:    email,
		ImageURL: models.DefaultAvatarURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// deriveUsername builds a username from the email local part, keeping only
// characters the username rules allow.
func deriveUsername(email string) string {
	local := email[:strings.IndexByte(email, '@')]
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}
