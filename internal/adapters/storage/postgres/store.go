package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"petcare-api/internal/ports/documents"
)

// Store implementa documents.Store sobre una única tabla JSONB
// (collection, id) -> data.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Set(ctx context.Context, collection, id string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, collection, id, string(data))
	return errors.Wrapf(err, "set %s/%s", collection, id)
}

func (s *Store) Get(ctx context.Context, collection, id string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(documents.ErrNotFound, "%s/%s", collection, id)
		}
		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}
	return data, nil
}

// Delete no verifica RowsAffected: borrar algo inexistente no es error.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id)
	return errors.Wrapf(err, "delete %s/%s", collection, id)
}

func (s *Store) List(ctx context.Context, collection string) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM documents WHERE collection = $1
	`, collection)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}
	defer rows.Close()

	out := make([][]byte, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "scan %s", collection)
		}
		out = append(out, data)
	}
	return out, errors.Wrapf(rows.Err(), "list %s", collection)
}

var _ documents.Store = (*Store)(nil)
