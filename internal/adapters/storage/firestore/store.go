// Package firestore implementa documents.Store sobre Cloud Firestore, el
// backend documental de producción.
package firestore

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petcare-api/internal/ports/documents"
)

type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Set(ctx context.Context, collection, id string, data []byte) error {
	fields, err := toFields(data)
	if err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, id)
	}
	_, err = s.client.Collection(collection).Doc(id).Set(ctx, fields)
	return errors.Wrapf(err, "set %s/%s", collection, id)
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.Wrapf(documents.ErrNotFound, "%s/%s", collection, id)
		}
		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}
	if !snap.Exists() {
		return nil, errors.Wrapf(documents.ErrNotFound, "%s/%s", collection, id)
	}
	return fromFields(snap.Data())
}

// Delete: Firestore no falla al borrar un documento inexistente.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return errors.Wrapf(err, "delete %s/%s", collection, id)
}

func (s *Store) List(ctx context.Context, collection string) ([][]byte, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([][]byte, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", collection)
		}

		data, err := fromFields(snap.Data())
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", collection)
		}
		out = append(out, data)
	}
	return out, nil
}

// toFields: Firestore guarda mapas, no JSON crudo. El documento tiene que ser
// un objeto JSON.
func toFields(data []byte) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "document must be a json object")
	}
	if fields == nil {
		return nil, errors.New("document must be a json object")
	}
	return fields, nil
}

func fromFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	return b, errors.Wrap(err, "encode document")
}

var _ documents.Store = (*Store)(nil)
