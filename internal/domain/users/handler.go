package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare-api/internal/middleware"
	"petcare-api/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type createUserRequest struct {
	ID       *string `json:"id" validate:"required"`
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Plan     *string `json:"plan"`
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Guarda el usuario bajo el `id` enviado (upsert).
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Usuario"
// @Success 200 {object} User
// @Failure 422 {object} map[string]any "payload inválido"
// @Failure 500 {object} map[string]any
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFrom(r.Context())

		var req createUserRequest
		if err := httpjson.DecodeJSON(r, &req); err != nil {
			httpjson.WriteBadInput(w, log, "create user", err)
			return
		}

		u, err := svc.Create(r.Context(), User{
			ID:       *req.ID,
			Username: *req.Username,
			Email:    *req.Email,
			Plan:     req.Plan,
		})
		if err != nil {
			httpjson.InternalError(w, log, "create user", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, u)
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Failure 500 {object} map[string]any
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "list users", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, items)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} User
// @Failure 404 {object} map[string]any "User not found"
// @Failure 500 {object} map[string]any
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.WriteDetail(w, http.StatusNotFound, "User not found")
				return
			}
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "get user", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, u)
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]any
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "delete user", err)
			return
		}
		httpjson.WriteOK(w)
	}
}
