package domain

import (
	apperrors "github.com/allisson/cardvault/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = apperrors.Wrap(apperrors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "user already exists")

	// ErrInvalidCredentials is returned when email or password verification fails.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
)
