package healthmetrics

import "context"

// CollectionName se mantiene como "health" por compatibilidad con los datos
// existentes.
const CollectionName = "health"

type Repository interface {
	Put(ctx context.Context, m Metric) error
	GetByID(ctx context.Context, id string) (Metric, error)
	List(ctx context.Context) ([]Metric, error)
	Delete(ctx context.Context, id string) error
}
