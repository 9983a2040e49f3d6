package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardvault/internal/testutil"
	"github.com/allisson/cardvault/internal/user/domain"
)

// Integration tests run against a real database and are skipped when none is
// reachable. See internal/testutil for the DSN environment variables.

func TestPostgreSQLUserRepositoryIntegration(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "argon2-hash-placeholder",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("create and fetch by email and id", func(t *testing.T) {
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, user.Name, byEmail.Name)
		assert.Equal(t, user.Password, byEmail.Password)

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := &domain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "Ada Again",
			Email:     user.Email,
			Password:  "another-hash",
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestMySQLUserRepositoryIntegration(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLUserRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "argon2-hash-placeholder",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("create and fetch by email", func(t *testing.T) {
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		byEmail, err := repo.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		dup := &domain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "Ada Again",
			Email:     user.Email,
			Password:  "another-hash",
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}
