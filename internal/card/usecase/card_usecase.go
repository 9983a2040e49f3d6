// Package usecase implements business logic orchestration for card storage.
// This package coordinates validation, deterministic encryption, and
// repositories to register and look up payment cards without ever persisting
// a card number in the clear.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// cardUseCase implements the CardUseCase interface.
type cardUseCase struct {
	cardRepo  CardRepository
	encryptor CardEncryptor
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(cardRepo CardRepository, encryptor CardEncryptor) CardUseCase {
	return &cardUseCase{
		cardRepo:  cardRepo,
		encryptor: encryptor,
	}
}

// CreateCard validates, encrypts, and persists a card for the given user.
// Registering the same card number twice for the same user returns
// ErrDuplicateCard.
func (c *cardUseCase) CreateCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	if err := domain.ValidateCardNumber(cardNumber); err != nil {
		return nil, err
	}

	ciphertext, err := c.encryptor.Encrypt(cardNumber)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrEncryptionFailed, err.Error())
	}

	// Cheap pre-check; the unique constraint on (user_id, card_number_encrypted)
	// still catches concurrent inserts that pass it.
	existing, err := c.cardRepo.GetByUserAndCiphertext(ctx, userID, ciphertext)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCard
	}

	card := &domain.Card{
		CardID:          uuid.Must(uuid.NewV7()),
		UserID:          userID,
		NumberEncrypted: ciphertext,
		CreatedAt:       time.Now().UTC(),
	}

	if err := c.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// LookupCard checks whether a card number is registered for the given user.
// Encrypting the probe and comparing ciphertexts avoids decrypting stored
// rows; this only works because the encryptor is deterministic.
func (c *cardUseCase) LookupCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	if err := domain.ValidateCardNumber(cardNumber); err != nil {
		return nil, err
	}

	ciphertext, err := c.encryptor.Encrypt(cardNumber)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrEncryptionFailed, err.Error())
	}

	return c.cardRepo.GetByUserAndCiphertext(ctx, userID, ciphertext)
}
