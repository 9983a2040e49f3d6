// Package domain defines the core card domain entities and rules for the
// tokenization service. A card stores only the deterministic ciphertext of
// its number; the raw number never leaves the create/lookup call.
package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// cardNumberRegex matches 13 to 19 ASCII decimal digits, the valid PAN
// length range. No separators, no sign.
var cardNumberRegex = regexp.MustCompile(`^\d{13,19}$`)

// Card represents a tokenized payment card. CardID is the opaque identifier
// exposed to clients; NumberEncrypted is the deterministic ciphertext of the
// card number, used both for storage and equality-based duplicate lookup.
type Card struct {
	CardID          uuid.UUID
	UserID          uuid.UUID
	NumberEncrypted string
	CreatedAt       time.Time
}

// ValidateCardNumber checks that a candidate card number is 13 to 19 ASCII
// digits. Returns ErrInvalidCardNumber otherwise. No side effects; the same
// check runs for the single-card path and every batch detail record.
func ValidateCardNumber(cardNumber string) error {
	if cardNumber == "" {
		return ErrInvalidCardNumber
	}
	if !cardNumberRegex.MatchString(cardNumber) {
		return ErrInvalidCardNumber
	}
	return nil
}
