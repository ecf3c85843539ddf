package objects

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotConfigured = errors.New("object store not configured")
)

// Store sube blobs y los publica. Upload devuelve la URL pública del objeto.
type Store interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (url string, err error)
}
