package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardvault/internal/card/domain"
	"github.com/allisson/cardvault/internal/testutil"
)

// Integration tests run against a real database and are skipped when none is
// reachable. See internal/testutil for the DSN environment variables.

func TestPostgreSQLCardRepositoryIntegration(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLCardRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "postgres", "cardholder@example.com")

	card := &domain.Card{
		CardID:          uuid.Must(uuid.NewV7()),
		UserID:          userID,
		NumberEncrypted: "q1w2e3r4t5y6u7i8o9p0",
		CreatedAt:       time.Now().UTC(),
	}

	t.Run("create and read back", func(t *testing.T) {
		err := repo.Create(ctx, card)
		require.NoError(t, err)

		got, err := repo.GetByUserAndCiphertext(ctx, userID, card.NumberEncrypted)
		require.NoError(t, err)
		assert.Equal(t, card.CardID, got.CardID)
		assert.Equal(t, card.UserID, got.UserID)
		assert.Equal(t, card.NumberEncrypted, got.NumberEncrypted)
		assert.WithinDuration(t, card.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("unique constraint rejects duplicate ciphertext per user", func(t *testing.T) {
		dup := &domain.Card{
			CardID:          uuid.Must(uuid.NewV7()),
			UserID:          userID,
			NumberEncrypted: card.NumberEncrypted,
			CreatedAt:       time.Now().UTC(),
		}

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrDuplicateCard)
	})

	t.Run("same ciphertext under another user is allowed", func(t *testing.T) {
		otherUserID := testutil.CreateTestUser(t, db, "postgres", "other@example.com")

		other := &domain.Card{
			CardID:          uuid.Must(uuid.NewV7()),
			UserID:          otherUserID,
			NumberEncrypted: card.NumberEncrypted,
			CreatedAt:       time.Now().UTC(),
		}

		err := repo.Create(ctx, other)
		assert.NoError(t, err)
	})

	t.Run("lookup miss returns not found", func(t *testing.T) {
		_, err := repo.GetByUserAndCiphertext(ctx, userID, "no-such-ciphertext")
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}

func TestMySQLCardRepositoryIntegration(t *testing.T) {
	testutil.SkipIfNoMySQL(t)

	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLCardRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "mysql", "cardholder@example.com")

	card := &domain.Card{
		CardID:          uuid.Must(uuid.NewV7()),
		UserID:          userID,
		NumberEncrypted: "q1w2e3r4t5y6u7i8o9p0",
		CreatedAt:       time.Now().UTC(),
	}

	t.Run("create and read back", func(t *testing.T) {
		err := repo.Create(ctx, card)
		require.NoError(t, err)

		got, err := repo.GetByUserAndCiphertext(ctx, userID, card.NumberEncrypted)
		require.NoError(t, err)
		assert.Equal(t, card.CardID, got.CardID)
		assert.Equal(t, card.UserID, got.UserID)
		assert.Equal(t, card.NumberEncrypted, got.NumberEncrypted)
	})

	t.Run("unique constraint rejects duplicate ciphertext per user", func(t *testing.T) {
		dup := &domain.Card{
			CardID:          uuid.Must(uuid.NewV7()),
			UserID:          userID,
			NumberEncrypted: card.NumberEncrypted,
			CreatedAt:       time.Now().UTC(),
		}

		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrDuplicateCard)
	})
}
