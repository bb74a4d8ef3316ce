package patron

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a patron is not found.
var ErrNotFound = errors.New("patron not found")

// Patron is a borrower identity. Immutable after creation.
type Patron struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
