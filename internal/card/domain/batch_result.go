package domain

import "fmt"

// BatchImportResult aggregates the outcome of a batch import: the header's
// declared record count, how many records were persisted, how many failed,
// and a human-readable summary. Partial success is the normal case.
type BatchImportResult struct {
	ExpectedRecords int    `json:"expected_records"`
	SuccessCount    int    `json:"success_count"`
	ErrorCount      int    `json:"error_count"`
	Message         string `json:"message"`
}

// NewBatchImportResult builds the final result with the standard summary
// message. The "Processed" figure counts records that were actually
// persisted, so it always equals the success count; failed lines only show
// up under "Errors". A non-empty warning (trailer mismatch) is appended to
// the message without changing any count.
func NewBatchImportResult(expected, success, errors int, warning string) *BatchImportResult {
	message := fmt.Sprintf(
		"Batch import completed. Expected: %d, Processed: %d, Success: %d, Errors: %d",
		expected, success, success, errors,
	)
	if warning != "" {
		message += ". Warning: " + warning
	}

	return &BatchImportResult{
		ExpectedRecords: expected,
		SuccessCount:    success,
		ErrorCount:      errors,
		Message:         message,
	}
}

// EmptyBatchImportResult is returned when the uploaded file has no non-blank
// lines. Defined non-error case: nothing was expected, nothing was touched.
func EmptyBatchImportResult() *BatchImportResult {
	return &BatchImportResult{Message: "File is empty"}
}
