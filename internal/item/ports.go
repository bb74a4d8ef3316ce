package item

import (
	"context"
)

// Repository defines the contract for item storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, it *Item) error
}
