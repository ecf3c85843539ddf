package healthmetrics

import (
	"context"
	"errors"

	"petcare-api/internal/ports/documents"
)

var (
	ErrNotFound = errors.New("health metric not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m Metric) (Metric, error) {
	if err := s.repo.Put(ctx, m); err != nil {
		return Metric{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Metric, error) {
	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, documents.ErrNotFound) {
		return Metric{}, ErrNotFound
	}
	return m, err
}

func (s *Service) List(ctx context.Context) ([]Metric, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
