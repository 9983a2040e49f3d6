package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/cardvault/internal/card/domain"
	"github.com/allisson/cardvault/internal/card/usecase/mocks"
	"github.com/allisson/cardvault/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestCardUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	cardNumber := "4111111111111111"

	t.Run("CreateCard records success", func(t *testing.T) {
		mockUseCase := &mocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

		card := &domain.Card{CardID: uuid.Must(uuid.NewV7()), UserID: userID}
		mockUseCase.On("CreateCard", ctx, userID, cardNumber).Return(card, nil)
		mockMetrics.On("RecordOperation", ctx, "cards", "card_create", "success").Return()
		mockMetrics.On("RecordDuration", ctx, "cards", "card_create", mock.Anything, "success").Return()

		got, err := decorator.CreateCard(ctx, userID, cardNumber)
		assert.NoError(t, err)
		assert.Equal(t, card, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CreateCard records error", func(t *testing.T) {
		mockUseCase := &mocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

		mockUseCase.On("CreateCard", ctx, userID, cardNumber).Return(nil, domain.ErrDuplicateCard)
		mockMetrics.On("RecordOperation", ctx, "cards", "card_create", "error").Return()
		mockMetrics.On("RecordDuration", ctx, "cards", "card_create", mock.Anything, "error").Return()

		got, err := decorator.CreateCard(ctx, userID, cardNumber)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrDuplicateCard)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("LookupCard records success", func(t *testing.T) {
		mockUseCase := &mocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

		card := &domain.Card{CardID: uuid.Must(uuid.NewV7()), UserID: userID}
		mockUseCase.On("LookupCard", ctx, userID, cardNumber).Return(card, nil)
		mockMetrics.On("RecordOperation", ctx, "cards", "card_lookup", "success").Return()
		mockMetrics.On("RecordDuration", ctx, "cards", "card_lookup", mock.Anything, "success").Return()

		got, err := decorator.LookupCard(ctx, userID, cardNumber)
		assert.NoError(t, err)
		assert.Equal(t, card, got)
		mockMetrics.AssertExpectations(t)
	})
}

func TestBatchImportUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("records error on unreadable input", func(t *testing.T) {
		inner := NewBatchImportUseCase(&mocks.MockCardUseCase{})
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewBatchImportUseCaseWithMetrics(inner, mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "cards", "batch_import", "error").Return()
		mockMetrics.On("RecordDuration", ctx, "cards", "batch_import", mock.Anything, "error").Return()

		result, err := decorator.ImportBatch(ctx, userID, errReader{})
		assert.Nil(t, result)
		assert.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("records success", func(t *testing.T) {
		inner := NewBatchImportUseCase(&mocks.MockCardUseCase{})
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewBatchImportUseCaseWithMetrics(inner, mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "cards", "batch_import", "success").Return()
		mockMetrics.On("RecordDuration", ctx, "cards", "batch_import", mock.Anything, "success").Return()

		result, err := decorator.ImportBatch(ctx, userID, strings.NewReader(""))
		assert.NoError(t, err)
		assert.Equal(t, "File is empty", result.Message)
		mockMetrics.AssertExpectations(t)
	})
}
