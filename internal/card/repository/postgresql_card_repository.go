// Package repository provides data persistence implementations for card
// entities, with dual database support (PostgreSQL and MySQL). The cards
// table enforces UNIQUE (user_id, card_number_encrypted), so a lost
// check-then-insert race still surfaces as ErrDuplicateCard.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// PostgreSQLCardRepository handles card persistence for PostgreSQL.
type PostgreSQLCardRepository struct {
	db *sql.DB
}

// NewPostgreSQLCardRepository creates a new PostgreSQLCardRepository.
func NewPostgreSQLCardRepository(db *sql.DB) *PostgreSQLCardRepository {
	return &PostgreSQLCardRepository{db: db}
}

// Create inserts a new card.
func (r *PostgreSQLCardRepository) Create(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO cards (card_id, user_id, card_number_encrypted, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, card.CardID, card.UserID, card.NumberEncrypted, card.CreatedAt)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrDuplicateCard
		}
		return apperrors.Wrap(err, "failed to create card")
	}
	return nil
}

// GetByUserAndCiphertext retrieves a card by owner and encrypted card number.
// The equality lookup on the ciphertext is what makes duplicate detection and
// card lookup work; it depends on the encryptor being deterministic.
func (r *PostgreSQLCardRepository) GetByUserAndCiphertext(
	ctx context.Context,
	userID uuid.UUID,
	ciphertext string,
) (*domain.Card, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT card_id, user_id, card_number_encrypted, created_at
			  FROM cards WHERE user_id = $1 AND card_number_encrypted = $2`

	var card domain.Card
	err := querier.QueryRowContext(ctx, query, userID, ciphertext).Scan(
		&card.CardID, &card.UserID, &card.NumberEncrypted, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card by user and ciphertext")
	}

	return &card, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
