package documents

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// Collection es una vista tipada de una colección del Store. Serializa T con
// encoding/json, así el documento guardado tiene la misma forma que la API.
//
// Satisface los Repository de cada dominio (Put/GetByID/List/Delete).
// Los ids se usan tal cual llegan: "t1" y "t1 " son documentos distintos.
type Collection[T any] struct {
	store Store
	name  string
	idOf  func(T) string
}

func NewCollection[T any](store Store, name string, idOf func(T) string) *Collection[T] {
	return &Collection[T]{store: store, name: name, idOf: idOf}
}

func (c *Collection[T]) Name() string { return c.name }

// Put guarda v bajo su propio id.
func (c *Collection[T]) Put(ctx context.Context, v T) error {
	return c.Save(ctx, c.idOf(v), v)
}

// Save guarda v bajo id, sin mirar el id que traiga v.
func (c *Collection[T]) Save(ctx context.Context, id string, v T) error {
	if id == "" {
		return errors.Errorf("%s: document id required", c.name)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "%s: encode %s", c.name, id)
	}
	return c.store.Set(ctx, c.name, id, data)
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var out T

	if id == "" {
		return out, ErrNotFound
	}

	data, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.Wrapf(err, "%s: decode %s", c.name, id)
	}
	return out, nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, data := range docs {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrapf(err, "%s: decode", c.name)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return c.store.Delete(ctx, c.name, id)
}
