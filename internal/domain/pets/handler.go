package pets

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare-api/internal/middleware"
	"petcare-api/internal/platform/httpjson"
)

// maxFormMemory: lo que excede se guarda en archivos temporales, no es un
// límite de tamaño.
const maxFormMemory = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// createPetForm son los campos del form. Un campo vacío cuenta como no
// enviado: nil.
type createPetForm struct {
	Name    *string `form:"name" validate:"required"`
	Species *string `form:"species" validate:"required"`
	Breed   *string `form:"breed" validate:"required"`
	Age     *string `form:"age" validate:"required"`
	Notes   *string `form:"notes"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota a partir de un form (multipart o urlencoded). Si viene `image`, se sube al object store en `pets/{id}/{filename}`, se publica y su URL queda en `avatar`.
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Nombre"
// @Param species formData string true "Especie"
// @Param breed formData string true "Raza"
// @Param age formData string true "Edad"
// @Param notes formData string false "Notas"
// @Param image formData file false "Imagen de avatar"
// @Success 201 {object} Pet
// @Failure 422 {object} map[string]any "campos faltantes o form inválido"
// @Failure 500 {object} map[string]any "error de storage o upload"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFrom(r.Context())

		if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			httpjson.WriteValidation(w, &httpjson.ValidationError{Errors: []httpjson.FieldError{{
				Loc: []string{"body"}, Msg: "invalid form data", Type: "value_error.form",
			}}})
			return
		}
		if r.MultipartForm != nil {
			defer func() { _ = r.MultipartForm.RemoveAll() }()
		}

		form := createPetForm{
			Name:    formValue(r, "name"),
			Species: formValue(r, "species"),
			Breed:   formValue(r, "breed"),
			Age:     formValue(r, "age"),
			Notes:   formValue(r, "notes"),
		}
		if err := httpjson.Validate(&form); err != nil {
			httpjson.WriteBadInput(w, log, "create pet", err)
			return
		}

		var img *Image
		// Sin multipart (urlencoded) FormFile devuelve error: no hay imagen.
		if file, fh, err := r.FormFile("image"); err == nil {
			defer file.Close()
			// Un input file vacío llega como parte sin nombre ni contenido.
			if fh.Filename != "" || fh.Size > 0 {
				img = &Image{
					Filename:    fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					Body:        file,
				}
			}
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    *form.Name,
			Species: *form.Species,
			Breed:   *form.Breed,
			Age:     *form.Age,
			Notes:   form.Notes,
		}, img)
		if err != nil {
			httpjson.InternalError(w, log, "create pet", err)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, p)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas. Sin paginación ni orden garantizado.
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Failure 500 {object} map[string]any
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "list pets", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, items)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {object} map[string]any "Pet not found"
// @Failure 500 {object} map[string]any
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.WriteDetail(w, http.StatusNotFound, "Pet not found")
				return
			}
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "get pet", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, p)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra el documento. No falla si no existe y no borra la imagen subida.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]any
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "delete pet", err)
			return
		}
		httpjson.WriteOK(w)
	}
}

// formValue devuelve nil si el campo no vino o vino vacío ("name=").
func formValue(r *http.Request, key string) *string {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 || vs[0] == "" {
		return nil
	}
	v := vs[0]
	return &v
}
