package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"petcare-api/internal/ports/documents"
)

// store guarda copias de los documentos: lo que se devuelve nunca comparte
// memoria con lo guardado.
type store struct {
	mu           sync.RWMutex
	byCollection map[string]map[string][]byte
}

func NewStore() documents.Store {
	return &store{
		byCollection: make(map[string]map[string][]byte),
	}
}

func (s *store) Set(ctx context.Context, collection, id string, data []byte) error {
	if collection == "" || id == "" {
		return errors.New("collection and id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.byCollection[collection]
	if !ok {
		docs = make(map[string][]byte)
		s.byCollection[collection] = docs
	}
	docs[id] = clone(data)
	return nil
}

func (s *store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byCollection[collection][id]
	if !ok {
		return nil, errors.Wrapf(documents.ErrNotFound, "%s/%s", collection, id)
	}
	return clone(d), nil
}

func (s *store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byCollection[collection], id)
	return nil
}

func (s *store) List(ctx context.Context, collection string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.byCollection[collection]
	out := make([][]byte, 0, len(docs))
	for _, d := range docs {
		out = append(out, clone(d))
	}
	return out, nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
