package pets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"petcare-api/internal/ports/documents"
	"petcare-api/internal/ports/objects"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Service struct {
	repo    Repository
	objects objects.Store // puede ser nil: sin uploads de imagen
	newID   func() string
}

func NewService(repo Repository, store objects.Store) *Service {
	return &Service{
		repo:    repo,
		objects: store,
		newID:   uuid.NewString,
	}
}

type CreateInput struct {
	Name    string
	Species string
	Breed   string
	Age     string
	Notes   *string
}

// Image es el archivo opcional que acompaña al alta.
type Image struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Create genera el id, sube la imagen (si viene) y recién después escribe el
// documento. Si el upload falla no se escribe nada; si falla la escritura el
// blob queda huérfano.
func (s *Service) Create(ctx context.Context, in CreateInput, img *Image) (Pet, error) {
	p := Pet{
		ID:      s.newID(),
		Name:    in.Name,
		Species: in.Species,
		Breed:   in.Breed,
		Age:     in.Age,
		Notes:   in.Notes,
	}

	if img != nil {
		if s.objects == nil {
			return Pet{}, objects.ErrNotConfigured
		}
		url, err := s.objects.Upload(ctx, ImageKey(p.ID, img.Filename), img.ContentType, img.Body)
		if err != nil {
			return Pet{}, fmt.Errorf("upload avatar: %w", err)
		}
		p.Avatar = &url
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, documents.ErrNotFound) {
		return Pet{}, ErrNotFound
	}
	return p, err
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Delete no borra la imagen del bucket (decisión de producto pendiente).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ImageKey arma la ruta del avatar: pets/{id}/{filename}. Del filename solo
// se conserva el nombre base.
func ImageKey(petID, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		name = "image"
	}
	return "pets/" + petID + "/" + name
}
