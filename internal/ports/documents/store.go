package documents

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Store es una base documental sin esquema: cada colección es un mapa
// id -> documento JSON.
//
// Set hace upsert (último en escribir gana). Delete sobre un id inexistente
// no es error. List no garantiza orden.
type Store interface {
	Set(ctx context.Context, collection, id string, data []byte) error
	Get(ctx context.Context, collection, id string) ([]byte, error)
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string) ([][]byte, error)
}
