package item

import (
	"context"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns items matching the query; an empty query matches all.
func (s *Service) List(ctx context.Context, q Query) ([]Item, error) {
	return s.repo.List(ctx, q)
}

// GetByID returns a single item or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new item in the catalog.
func (s *Service) Create(ctx context.Context, it *Item) error {
	return s.repo.Create(ctx, it)
}
