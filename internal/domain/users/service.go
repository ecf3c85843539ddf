package users

import (
	"context"
	"errors"

	"petcare-api/internal/ports/documents"
)

var (
	ErrNotFound = errors.New("user not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create guarda el usuario tal cual llega. El email no se valida ni se
// chequea unicidad.
func (s *Service) Create(ctx context.Context, u User) (User, error) {
	if err := s.repo.Put(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, documents.ErrNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
