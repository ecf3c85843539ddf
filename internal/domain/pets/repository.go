package pets

import "context"

const CollectionName = "pets"

type Repository interface {
	Put(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	Delete(ctx context.Context, id string) error
}
