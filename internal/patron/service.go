package patron

import (
	"context"
)

// Service provides registry business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns patrons, optionally filtered by a name substring.
func (s *Service) List(ctx context.Context, name string) ([]Patron, error) {
	return s.repo.List(ctx, name)
}

// GetByID returns a single patron or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Patron, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new patron.
func (s *Service) Create(ctx context.Context, p *Patron) error {
	return s.repo.Create(ctx, p)
}
