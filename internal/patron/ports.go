package patron

import (
	"context"
)

// Repository defines the contract for patron storage.
type Repository interface {
	List(ctx context.Context, name string) ([]Patron, error)
	GetByID(ctx context.Context, id string) (Patron, error)
	Create(ctx context.Context, p *Patron) error
}
