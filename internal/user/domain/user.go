// Package domain defines the core entities and errors for user management.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an API user account. Password holds the hash, never the
// plaintext.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
