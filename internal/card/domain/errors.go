package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

var (
	// ErrCardNotFound indicates no card exists for the given owner and number.
	ErrCardNotFound = errors.Wrap(errors.ErrNotFound, "card not found")

	// ErrDuplicateCard indicates the card is already registered for this user.
	// Expected and recoverable: batch processing counts it without aborting.
	ErrDuplicateCard = errors.Wrap(errors.ErrConflict, "card already registered for this user")

	// ErrInvalidCardNumber indicates the card number is not 13-19 digits.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "card number must be 13 to 19 digits")

	// ErrEncryptionFailed indicates the card number could not be encrypted.
	ErrEncryptionFailed = errors.Wrap(errors.ErrInternal, "encryption failed")

	// ErrDecryptionFailed indicates a stored ciphertext could not be decrypted.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInternal, "decryption failed")

	// ErrMalformedHeader indicates the batch file header is structurally
	// invalid. Fatal to the whole batch: the header cannot be partially trusted.
	ErrMalformedHeader = errors.Wrap(errors.ErrInvalidInput, "malformed batch header")

	// ErrRecordCountMismatch indicates the header's declared record count does
	// not match the card lines actually present. Fatal to the whole batch,
	// raised before any record is processed.
	ErrRecordCountMismatch = errors.Wrap(errors.ErrInvalidInput, "record count mismatch")
)
