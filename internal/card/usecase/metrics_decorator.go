package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
	"github.com/allisson/cardvault/internal/metrics"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateCard records metrics for card registration operations.
func (c *cardUseCaseWithMetrics) CreateCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.CreateCard(ctx, userID, cardNumber)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_create", status)
	c.metrics.RecordDuration(ctx, "cards", "card_create", time.Since(start), status)

	return card, err
}

// LookupCard records metrics for card lookup operations.
func (c *cardUseCaseWithMetrics) LookupCard(
	ctx context.Context,
	userID uuid.UUID,
	cardNumber string,
) (*domain.Card, error) {
	start := time.Now()
	card, err := c.next.LookupCard(ctx, userID, cardNumber)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cards", "card_lookup", status)
	c.metrics.RecordDuration(ctx, "cards", "card_lookup", time.Since(start), status)

	return card, err
}

// batchImportUseCaseWithMetrics decorates BatchImportUseCase with metrics instrumentation.
type batchImportUseCaseWithMetrics struct {
	next    BatchImportUseCase
	metrics metrics.BusinessMetrics
}

// NewBatchImportUseCaseWithMetrics wraps a BatchImportUseCase with metrics recording.
func NewBatchImportUseCaseWithMetrics(useCase BatchImportUseCase, m metrics.BusinessMetrics) BatchImportUseCase {
	return &batchImportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// ImportBatch records metrics for batch import operations.
func (b *batchImportUseCaseWithMetrics) ImportBatch(
	ctx context.Context,
	userID uuid.UUID,
	file io.Reader,
) (*domain.BatchImportResult, error) {
	start := time.Now()
	result, err := b.next.ImportBatch(ctx, userID, file)

	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, "cards", "batch_import", status)
	b.metrics.RecordDuration(ctx, "cards", "batch_import", time.Since(start), status)

	return result, err
}
