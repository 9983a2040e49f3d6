// Package domain defines the core errors for authentication.
package domain

import (
	apperrors "github.com/allisson/cardvault/internal/errors"
)

var (
	// ErrInvalidToken is returned when a bearer token is missing, malformed,
	// expired, or fails signature verification.
	ErrInvalidToken = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid or expired token")
)
