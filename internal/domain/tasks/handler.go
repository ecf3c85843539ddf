package tasks

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare-api/internal/middleware"
	"petcare-api/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc))
		tr.Get("/", listTasksHandler(svc))
		tr.Get("/{taskID}", getTaskHandler(svc))
		tr.Put("/{taskID}", updateTaskHandler(svc))
		tr.Delete("/{taskID}", deleteTaskHandler(svc))
	})
}

// taskRequest es el cuerpo de POST y PUT. completed es opcional (default false).
type taskRequest struct {
	ID          *string `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description"`
	Time        *string `json:"time" validate:"required"`
	Type        *string `json:"type" validate:"required"`
	PetName     *string `json:"petName" validate:"required"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" validate:"required"`
	Date        *string `json:"date" validate:"required"`
}

func (req taskRequest) toTask() Task {
	t := Task{
		ID:          *req.ID,
		Title:       *req.Title,
		Description: req.Description,
		Time:        *req.Time,
		Type:        *req.Type,
		PetName:     *req.PetName,
		Priority:    *req.Priority,
		Date:        *req.Date,
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	return t
}

// createTaskHandler godoc
// @Summary Crear tarea
// @Description Guarda la tarea bajo el `id` enviado (upsert). `completed` es false si no viene.
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body taskRequest true "Tarea"
// @Success 200 {object} Task
// @Failure 422 {object} map[string]any "payload inválido"
// @Failure 500 {object} map[string]any
// @Router /tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFrom(r.Context())

		var req taskRequest
		if err := httpjson.DecodeJSON(r, &req); err != nil {
			httpjson.WriteBadInput(w, log, "create task", err)
			return
		}

		t, err := svc.Create(r.Context(), req.toTask())
		if err != nil {
			httpjson.InternalError(w, log, "create task", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, t)
	}
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Tags tasks
// @Produce json
// @Success 200 {array} Task
// @Failure 500 {object} map[string]any
// @Router /tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "list tasks", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, items)
	}
}

// getTaskHandler godoc
// @Summary Obtener tarea
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} Task
// @Failure 404 {object} map[string]any "Task not found"
// @Failure 500 {object} map[string]any
// @Router /tasks/{taskID} [get]
func getTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.WriteDetail(w, http.StatusNotFound, "Task not found")
				return
			}
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "get task", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, t)
	}
}

// updateTaskHandler godoc
// @Summary Reemplazar tarea
// @Description Guarda el body completo bajo el id del path; los campos omitidos no se conservan. El body se devuelve tal cual.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Param payload body taskRequest true "Tarea completa"
// @Success 200 {object} Task
// @Failure 422 {object} map[string]any "payload inválido"
// @Failure 500 {object} map[string]any
// @Router /tasks/{taskID} [put]
func updateTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFrom(r.Context())

		var req taskRequest
		if err := httpjson.DecodeJSON(r, &req); err != nil {
			httpjson.WriteBadInput(w, log, "update task", err)
			return
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "taskID"), req.toTask())
		if err != nil {
			httpjson.InternalError(w, log, "update task", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, t)
	}
}

// deleteTaskHandler godoc
// @Summary Borrar tarea
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]any
// @Router /tasks/{taskID} [delete]
func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "delete task", err)
			return
		}
		httpjson.WriteOK(w)
	}
}
