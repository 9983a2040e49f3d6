// Package service provides JWT issuance and verification for API
// authentication.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/auth/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
)

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	IssueToken(userID uuid.UUID) (token string, expiresAt time.Time, err error)
	ValidateToken(token string) (uuid.UUID, error)
}

// jwtService implements TokenService with HS256-signed JWTs. The token
// subject carries the user ID.
type jwtService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTService creates a new TokenService.
func NewJWTService(secret string, expiration time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("jwt secret must not be empty")
	}
	if expiration <= 0 {
		return nil, apperrors.New("jwt expiration must be positive")
	}

	return &jwtService{
		secret:     []byte(secret),
		expiration: expiration,
	}, nil
}

// IssueToken creates a signed token for the given user.
func (s *jwtService) IssueToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiration)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// ValidateToken verifies the signature and expiration of a token and returns
// the user ID from its subject. All failures map to ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}
