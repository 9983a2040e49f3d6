package usecase

import (
	"context"
	"testing"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardvault/internal/errors"
	"github.com/allisson/cardvault/internal/user/domain"
	"github.com/allisson/cardvault/internal/user/usecase/mocks"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	require.NoError(t, err)
	hash, err := hasher.Hash([]byte(password))
	require.NoError(t, err)
	return hash
}

func TestUserUseCase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	validInput := RegisterUserInput{
		Name:     "Alice Example",
		Email:    "Alice@Example.COM",
		Password: "Str0ng-pass",
	}

	t.Run("success normalizes email and hashes password", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.RegisterUser(ctx, validInput)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Alice Example", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, validInput.Password, user.Password)
		assert.False(t, user.CreatedAt.IsZero())

		userRepo.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		tests := []RegisterUserInput{
			{Name: "", Email: "alice@example.com", Password: "Str0ng-pass"},
			{Name: "Alice", Email: "not-an-email", Password: "Str0ng-pass"},
			{Name: "Alice", Email: "alice@example.com", Password: "weak"},
			{Name: "Alice", Email: "alice@example.com", Password: "nouppercase1!"},
		}

		for _, input := range tests {
			user, err := uc.RegisterUser(ctx, input)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}

		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrUserAlreadyExists)

		user, err := uc.RegisterUser(ctx, validInput)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_VerifyCredentials(t *testing.T) {
	ctx := context.Background()
	password := "Str0ng-pass"

	storedUser := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     "Alice Example",
		Email:    "alice@example.com",
		Password: hashPassword(t, password),
	}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(storedUser, nil)

		user, err := uc.VerifyCredentials(ctx, " Alice@Example.COM ", password)
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(storedUser, nil)

		user, err := uc.VerifyCredentials(ctx, "alice@example.com", "wrong-password")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		user, err := uc.VerifyCredentials(ctx, "nobody@example.com", password)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("repository failure is not masked", func(t *testing.T) {
		userRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(userRepo)
		require.NoError(t, err)

		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, apperrors.New("connection reset"))

		user, err := uc.VerifyCredentials(ctx, "alice@example.com", password)
		assert.Nil(t, user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUserUseCase_GetUserByID(t *testing.T) {
	ctx := context.Background()

	userRepo := &mocks.MockUserRepository{}
	uc, err := NewUserUseCase(userRepo)
	require.NoError(t, err)

	id := uuid.Must(uuid.NewV7())
	userRepo.On("GetByID", ctx, id).Return(nil, domain.ErrUserNotFound)

	user, err := uc.GetUserByID(ctx, id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
