package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/batch"
	"github.com/allisson/cardvault/internal/card/domain"
)

// batchImportUseCase implements the BatchImportUseCase interface.
type batchImportUseCase struct {
	cardUseCase CardUseCase
}

// NewBatchImportUseCase creates a new BatchImportUseCase.
func NewBatchImportUseCase(cardUseCase CardUseCase) BatchImportUseCase {
	return &batchImportUseCase{cardUseCase: cardUseCase}
}

// ImportBatch processes a fixed-width batch file of card records for the
// given user. Structural problems (unreadable input, malformed header, a
// record count that disagrees with the header) fail the whole request before
// anything is persisted. After that point each detail line succeeds or fails
// on its own; a bad line never aborts the batch.
func (b *batchImportUseCase) ImportBatch(
	ctx context.Context,
	userID uuid.UUID,
	file io.Reader,
) (*domain.BatchImportResult, error) {
	lines, err := batch.ReadLines(file)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return domain.EmptyBatchImportResult(), nil
	}

	header, err := batch.ParseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	// Fail fast before touching storage when the file disagrees with its own
	// header.
	counted := batch.CountCardRecords(lines)
	if counted != header.ExpectedRecords {
		return nil, domain.ErrRecordCountMismatch
	}

	slog.Info("batch import started",
		"batch_id", header.BatchID,
		"batch_name", header.Name,
		"expected_records", header.ExpectedRecords,
	)

	var successCount, errorCount int
	var trailerWarning string

	for i, line := range lines[1:] {
		lineNumber := i + 2

		if batch.IsTrailer(line) {
			if err := batch.ValidateTrailer(line, successCount); err != nil {
				trailerWarning = err.Error()
				slog.Warn("batch trailer validation failed",
					"batch_id", header.BatchID,
					"line", lineNumber,
					"warning", trailerWarning,
				)
			}
			continue
		}

		cardNumber := batch.ExtractCardNumber(line)
		if cardNumber == "" {
			errorCount++
			slog.Warn("batch line is not a valid card record",
				"batch_id", header.BatchID,
				"line", lineNumber,
			)
			continue
		}

		if _, err := b.cardUseCase.CreateCard(ctx, userID, cardNumber); err != nil {
			errorCount++
			if errors.Is(err, domain.ErrDuplicateCard) {
				slog.Info("batch line skipped, card already registered",
					"batch_id", header.BatchID,
					"line", lineNumber,
				)
			} else {
				slog.Warn("batch line failed",
					"batch_id", header.BatchID,
					"line", lineNumber,
					"error", err,
				)
			}
			continue
		}

		successCount++
	}

	result := domain.NewBatchImportResult(
		header.ExpectedRecords,
		successCount,
		errorCount,
		trailerWarning,
	)

	slog.Info("batch import completed",
		"batch_id", header.BatchID,
		"expected_records", result.ExpectedRecords,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount,
	)

	return result, nil
}
