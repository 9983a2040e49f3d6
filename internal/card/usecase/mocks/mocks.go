// Package mocks provides mock implementations for testing card use cases.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/cardvault/internal/card/domain"
)

// MockCardRepository is a mock implementation of CardRepository for testing.
type MockCardRepository struct {
	mock.Mock
}

// Create mocks the Create method of CardRepository.
func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// GetByUserAndCiphertext mocks the GetByUserAndCiphertext method of CardRepository.
func (m *MockCardRepository) GetByUserAndCiphertext(
	ctx context.Context,
	userID uuid.UUID,
	ciphertext string,
) (*domain.Card, error) {
	args := m.Called(ctx, userID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

// MockCardEncryptor is a mock implementation of CardEncryptor for testing.
type MockCardEncryptor struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CardEncryptor.
func (m *MockCardEncryptor) Encrypt(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of CardEncryptor.
func (m *MockCardEncryptor) Decrypt(ciphertext string) (string, error) {
	args := m.Called(ciphertext)
	return args.String(0), args.Error(1)
}

// MockBatchImportUseCase is a mock implementation of BatchImportUseCase for testing.
type MockBatchImportUseCase struct {
	mock.Mock
}

// ImportBatch mocks the ImportBatch method of BatchImportUseCase.
func (m *MockBatchImportUseCase) ImportBatch(
	ctx context.Context,
	userID uuid.UUID,
	file io.Reader,
) (*domain.BatchImportResult, error) {
	args := m.Called(ctx, userID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchImportResult), args.Error(1)
}

// MockCardUseCase is a mock implementation of CardUseCase for testing.
type MockCardUseCase struct {
	mock.Mock
}

// CreateCard mocks the CreateCard method of CardUseCase.
func (m *MockCardUseCase) CreateCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	args := m.Called(ctx, userID, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

// LookupCard mocks the LookupCard method of CardUseCase.
func (m *MockCardUseCase) LookupCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	args := m.Called(ctx, userID, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}
