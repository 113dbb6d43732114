package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup_Validation(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   SignupInput
	}{
		{"empty username", SignupInput{Name: "A", Email: "a@b.co", Password: "Abc123"}},
		{"empty name", SignupInput{Username: "alice", Email: "a@b.co", Password: "Abc123"}},
		{"bad email", SignupInput{Username: "alice", Name: "A", Email: "not-an-email", Password: "Abc123"}},
		{"password too short", SignupInput{Username: "alice", Name: "A", Email: "a@b.co", Password: "Ab1"}},
		{"password no digit", SignupInput{Username: "alice", Name: "A", Email: "a@b.co", Password: "Abcdef"}},
		{"password no uppercase", SignupInput{Username: "alice", Name: "A", Email: "a@b.co", Password: "abc123"}},
		{"password no lowercase", SignupInput{Username: "alice", Name: "A", Email: "a@b.co", Password: "ABC123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Signup(ctx, tt.in)
			assertValidationError(t, err)
		})
	}
}

func TestAuthService_Signup_Duplicates(t *testing.T) {
	t.Parallel()

	in := SignupInput{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "Abc123"}

	t.Run("username taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 9, Username: "alice"}, nil
		}
		_, err := NewAuthService(repo).Signup(context.Background(), in)
		assertConflictError(t, err)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 9, Email: "alice@example.com"}, nil
		}
		_, err := NewAuthService(repo).Signup(context.Background(), in)
		assertConflictError(t, err)
	})
}

func TestAuthService_Signup_Success(t *testing.T) {
	t.Parallel()

	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		created = u
		return nil
	}

	user, err := NewAuthService(repo).Signup(context.Background(), SignupInput{
		Username: "alice",
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "Abc123",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "alice@example.com", user.Email, "email is normalized to lowercase")
	assert.Equal(t, models.DefaultAvatarURL, user.ImageURL)
	assert.NotEqual(t, "Abc123", user.Password, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Abc123")))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Abc123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &models.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: string(hashed)}

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == "alice" {
			return stored, nil
		}
		return nil, nil
	}
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "alice@example.com" {
			return stored, nil
		}
		return nil, nil
	}
	svc := NewAuthService(repo)
	ctx := context.Background()

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{LoginName: "alice", Password: "Abc123"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Login(ctx, LoginInput{LoginName: "alice@example.com", Password: "Abc123"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{LoginName: "alice", Password: "Wrong123"})
		assertAppErrorCode(t, err, models.CodeUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{LoginName: "ghost", Password: "Abc123"})
		assertAppErrorCode(t, err, models.CodeUnauthorized)
	})
}

func TestAuthService_GoogleAuth(t *testing.T) {
	t.Parallel()

	t.Run("existing user returned", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 5, Email: "alice@example.com"}, nil
		}
		user, err := NewAuthService(repo).GoogleAuth(context.Background(), GoogleAuthInput{Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, uint(5), user.ID)
	})

	t.Run("first sign-in creates account", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 6
			return nil
		}
		user, err := NewAuthService(repo).GoogleAuth(context.Background(), GoogleAuthInput{
			Email: "bob.smith@example.com",
			Name:  "Bob Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(6), user.ID)
		assert.Equal(t, "bobsmith", user.Username)
		assert.Equal(t, "Bob Smith", user.Name)
	})
}
