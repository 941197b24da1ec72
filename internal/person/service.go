package person

import (
	"context"
)

// Service provides catalog access.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog in source order.
func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

// Get returns the person at a catalog index.
func (s *Service) Get(ctx context.Context, index int) (Person, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return Person{}, err
	}
	if index < 0 || index >= len(persons) {
		return Person{}, ErrNotFound
	}
	return persons[index], nil
}
