// Package local guarda objetos en disco y los sirve por HTTP. Pensado para
// desarrollo: la URL pública apunta al propio servidor (/media/...).
package local

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"petcare-api/internal/ports/objects"
)

type Store struct {
	baseDir string
	baseURL string
}

// New crea el store con raíz en baseDir. baseURL es el prefijo público
// (ej: http://localhost:8080/media).
func New(baseDir, baseURL string) *Store {
	return &Store{
		baseDir: baseDir,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

func (s *Store) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", errors.Wrap(err, "mkdir")
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "open file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", errors.Wrapf(err, "write %s", clean)
	}
	return s.URL(clean), nil
}

// URL arma la URL pública de una key ya limpia.
func (s *Store) URL(key string) string {
	return s.baseURL + "/" + (&url.URL{Path: key}).EscapedPath()
}

// Handler sirve los archivos guardados; se monta bajo el prefijo de baseURL.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.Dir(s.baseDir))
}

func cleanKey(key string) (string, error) {
	k := strings.TrimLeft(strings.TrimSpace(key), "/")
	clean := filepath.ToSlash(filepath.Clean(k))
	if k == "" || clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(k) {
		return "", errors.Errorf("invalid object key %q", key)
	}
	return clean, nil
}

var _ objects.Store = (*Store)(nil)
