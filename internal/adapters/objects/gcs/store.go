// Package gcs sube objetos a un bucket de Cloud Storage (el bucket de
// Firebase en producción) y los deja públicos.
package gcs

import (
	"context"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"

	"petcare-api/internal/ports/objects"
)

const publicHost = "https://storage.googleapis.com"

type Store struct {
	bucket *storage.BucketHandle
	name   string
}

func New(bucket *storage.BucketHandle, bucketName string) *Store {
	return &Store{bucket: bucket, name: strings.TrimSpace(bucketName)}
}

func (s *Store) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)

	w := obj.NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrapf(err, "gcs write %s", key)
	}
	// El upload se confirma recién en Close.
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "gcs close %s", key)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Wrapf(err, "gcs make public %s", key)
	}
	return publicURL(s.name, key), nil
}

func publicURL(bucket, key string) string {
	return publicHost + "/" + bucket + "/" + (&url.URL{Path: key}).EscapedPath()
}

var _ objects.Store = (*Store)(nil)
