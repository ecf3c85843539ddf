package tasks

import "context"

const CollectionName = "tasks"

type Repository interface {
	Put(ctx context.Context, t Task) error
	// Save guarda t bajo id aunque t.ID sea otro.
	Save(ctx context.Context, id string, t Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	Delete(ctx context.Context, id string) error
}
