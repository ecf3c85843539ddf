package tasks

import (
	"context"
	"errors"

	"petcare-api/internal/ports/documents"
)

var (
	ErrNotFound = errors.New("task not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create guarda la tarea bajo su propio id (upsert).
func (s *Service) Create(ctx context.Context, t Task) (Task, error) {
	if err := s.repo.Put(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Update guarda el body completo bajo id (sin merge ni control de
// concurrencia). Si no existía, lo crea. El id del body se guarda tal cual,
// aunque no coincida con el del path.
func (s *Service) Update(ctx context.Context, id string, t Task) (Task, error) {
	if err := s.repo.Save(ctx, id, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, documents.ErrNotFound) {
		return Task{}, ErrNotFound
	}
	return t, err
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
