package item

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an item is not found.
var ErrNotFound = errors.New("item not found")

// Item is a single physical unit available for lending, priced per day.
// Immutable after creation.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	RentPerDay int64     `json:"rentPerDay"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Query defines optional search filters for listing items. Each field
// translates independently to a storage predicate; zero values mean
// "no constraint".
type Query struct {
	Name     string
	Category string
	MinRent  *int64
	MaxRent  *int64
}
