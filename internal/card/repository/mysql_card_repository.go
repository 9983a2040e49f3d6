package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
	"github.com/allisson/cardvault/internal/database"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// MySQLCardRepository handles card persistence for MySQL.
type MySQLCardRepository struct {
	db *sql.DB
}

// NewMySQLCardRepository creates a new MySQLCardRepository.
func NewMySQLCardRepository(db *sql.DB) *MySQLCardRepository {
	return &MySQLCardRepository{db: db}
}

// Create inserts a new card.
func (r *MySQLCardRepository) Create(ctx context.Context, card *domain.Card) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO cards (card_id, user_id, card_number_encrypted, created_at)
			  VALUES (?, ?, ?, ?)`

	cardIDBytes, err := card.CardID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card UUID")
	}
	userIDBytes, err := card.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user UUID")
	}

	_, err = querier.ExecContext(ctx, query, cardIDBytes, userIDBytes, card.NumberEncrypted, card.CreatedAt)
	if err != nil {
		// MySQL error number 1062: duplicate entry
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return domain.ErrDuplicateCard
		}
		return apperrors.Wrap(err, "failed to create card")
	}
	return nil
}

// GetByUserAndCiphertext retrieves a card by owner and encrypted card number.
func (r *MySQLCardRepository) GetByUserAndCiphertext(
	ctx context.Context,
	userID uuid.UUID,
	ciphertext string,
) (*domain.Card, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT card_id, user_id, card_number_encrypted, created_at
			  FROM cards WHERE user_id = ? AND card_number_encrypted = ?`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user UUID")
	}

	var card domain.Card
	var cardIDBytes, ownerIDBytes []byte
	err = querier.QueryRowContext(ctx, query, userIDBytes, ciphertext).Scan(
		&cardIDBytes, &ownerIDBytes, &card.NumberEncrypted, &card.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card by user and ciphertext")
	}

	if err := card.CardID.UnmarshalBinary(cardIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card UUID")
	}
	if err := card.UserID.UnmarshalBinary(ownerIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user UUID")
	}

	return &card, nil
}
