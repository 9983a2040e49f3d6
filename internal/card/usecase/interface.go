package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
)

// CardRepository defines the interface for card data access.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	GetByUserAndCiphertext(ctx context.Context, userID uuid.UUID, ciphertext string) (*domain.Card, error)
}

// CardEncryptor defines the interface for card number encryption. Encrypt must
// be deterministic; stored ciphertexts are compared for equality.
type CardEncryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// CardUseCase defines the interface for card business logic.
type CardUseCase interface {
	CreateCard(ctx context.Context, userID uuid.UUID, cardNumber string) (*domain.Card, error)
	LookupCard(ctx context.Context, userID uuid.UUID, cardNumber string) (*domain.Card, error)
}

// BatchImportUseCase defines the interface for batch card file imports.
type BatchImportUseCase interface {
	ImportBatch(ctx context.Context, userID uuid.UUID, file io.Reader) (*domain.BatchImportResult, error)
}
