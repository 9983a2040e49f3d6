// Package batch parses the fixed-width card batch file layout: one header
// line, many detail (card) lines, and an optional trailer line.
//
// Layout (1-indexed character positions, no delimiters):
//
//	header:  1-29 batch name, 30-37 date (YYYYMMDD), 38-45 batch id,
//	         46-51 declared record count
//	detail:  1 record type ("C"), 8-26 card number
//	trailer: 1-8 literal "LOTE", 9-14 processed record count
//
// Header violations are fatal to the whole batch; trailer violations are
// advisory and only annotate the import summary.
package batch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/allisson/cardvault/internal/card/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// headerMinLength is the minimum header line length covering all four fields.
const headerMinLength = 51

// trailerMinLength covers the "LOTE" literal plus the quantity field.
const trailerMinLength = 14

// dateRegex matches the header date field: eight digits, YYYYMMDD. The value
// is not validated as a calendar date.
var dateRegex = regexp.MustCompile(`^\d{8}$`)

// Header holds the parsed fixed-width batch header record.
type Header struct {
	Name            string
	Date            string
	BatchID         string
	ExpectedRecords int
}

// ParseHeader parses and validates the header line. Any structural violation
// returns an error wrapping domain.ErrMalformedHeader: the header is
// load-bearing for the whole file and cannot be partially trusted.
func ParseHeader(line string) (*Header, error) {
	if len(line) < headerMinLength {
		return nil, apperrors.Wrapf(domain.ErrMalformedHeader,
			"header line must be at least %d characters long", headerMinLength)
	}

	name := strings.TrimSpace(line[0:29])
	date := strings.TrimSpace(line[29:37])
	batchID := strings.TrimSpace(line[37:45])
	qtyStr := strings.TrimSpace(line[45:51])

	if name == "" {
		return nil, apperrors.Wrap(domain.ErrMalformedHeader, "batch name (position 1-29) is empty")
	}
	if !dateRegex.MatchString(date) {
		return nil, apperrors.Wrap(domain.ErrMalformedHeader,
			"invalid date format (position 30-37), expected YYYYMMDD")
	}
	if batchID == "" {
		return nil, apperrors.Wrap(domain.ErrMalformedHeader, "batch id (position 38-45) is empty")
	}

	quantity, err := strconv.Atoi(qtyStr)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrMalformedHeader,
			"invalid record quantity format (position 46-51), expected numeric value")
	}
	if quantity < 0 {
		return nil, apperrors.Wrap(domain.ErrMalformedHeader, "record quantity cannot be negative")
	}

	return &Header{
		Name:            name,
		Date:            date,
		BatchID:         batchID,
		ExpectedRecords: quantity,
	}, nil
}

// IsTrailer reports whether the line is a trailer record: at least 8
// characters long with its first 4 characters (trimmed, case-insensitive)
// equal to "LOTE".
func IsTrailer(line string) bool {
	return len(line) >= 8 && strings.EqualFold(strings.TrimSpace(line[0:4]), "LOTE")
}

// ValidateTrailer checks the trailer's declared quantity against the number
// of successfully processed detail records. The returned error is advisory:
// callers carry it as a warning on the import summary, never as a failure.
func ValidateTrailer(line string, recordsProcessed int) error {
	if len(line) < trailerMinLength {
		return fmt.Errorf("trailer line must be at least %d characters long", trailerMinLength)
	}

	if !strings.EqualFold(strings.TrimSpace(line[0:8]), "LOTE") {
		return apperrors.New("invalid trailer format, expected LOTE at position 1-8")
	}

	qtyStr := strings.TrimSpace(line[8:14])
	trailerQty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return apperrors.New("invalid record quantity in trailer (position 9-14)")
	}

	if trailerQty != recordsProcessed {
		return fmt.Errorf("trailer record count (%d) does not match processed records (%d)",
			trailerQty, recordsProcessed)
	}

	return nil
}

// ExtractCardNumber extracts the card number (positions 8-26, trimmed) from
// a detail line. Returns "" when the line is too short, does not carry the
// "C" record type, or the field is blank; the caller treats an empty result
// as a per-record error, not a silent skip.
func ExtractCardNumber(line string) string {
	if len(line) < 8 {
		return ""
	}

	if !strings.EqualFold(strings.TrimSpace(line[0:1]), "C") {
		return ""
	}

	end := min(26, len(line))
	return strings.TrimSpace(line[7:end])
}

// CountCardRecords counts the detail lines in the file: non-blank,
// non-trailer lines after the header whose first character (trimmed,
// case-insensitive) is "C". Used by the fail-fast pre-pass check against the
// header's declared count, before any record is processed.
func CountCardRecords(lines []string) int {
	count := 0

	for i := 1; i < len(lines); i++ {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			continue
		}
		if IsTrailer(line) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(line[0:1]), "C") {
			count++
		}
	}

	return count
}
