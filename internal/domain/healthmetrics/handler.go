package healthmetrics

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare-api/internal/middleware"
	"petcare-api/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health", func(hr chi.Router) {
		hr.Post("/", createMetricHandler(svc))
		hr.Get("/", listMetricsHandler(svc))
		hr.Get("/{metricID}", getMetricHandler(svc))
		hr.Delete("/{metricID}", deleteMetricHandler(svc))
	})
}

type createMetricRequest struct {
	ID     *string          `json:"id" validate:"required"`
	PetID  *string          `json:"pet_id" validate:"required"`
	Metric *string          `json:"metric" validate:"required"`
	Value  *httpjson.Number `json:"value" validate:"required"`
	Date   *string          `json:"date" validate:"required"`
}

// createMetricHandler godoc
// @Summary Registrar métrica de salud
// @Description Guarda la métrica bajo el `id` enviado (upsert). `value` acepta número o string numérico.
// @Tags health
// @Accept json
// @Produce json
// @Param payload body createMetricRequest true "Métrica"
// @Success 200 {object} Metric
// @Failure 422 {object} map[string]any "payload inválido"
// @Failure 500 {object} map[string]any
// @Router /health [post]
func createMetricHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.LoggerFrom(r.Context())

		var req createMetricRequest
		if err := httpjson.DecodeJSON(r, &req); err != nil {
			httpjson.WriteBadInput(w, log, "create health metric", err)
			return
		}

		m, err := svc.Create(r.Context(), Metric{
			ID:     *req.ID,
			PetID:  *req.PetID,
			Metric: *req.Metric,
			Value:  float64(*req.Value),
			Date:   *req.Date,
		})
		if err != nil {
			httpjson.InternalError(w, log, "create health metric", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, m)
	}
}

// listMetricsHandler godoc
// @Summary Listar métricas de salud
// @Tags health
// @Produce json
// @Success 200 {array} Metric
// @Failure 500 {object} map[string]any
// @Router /health [get]
func listMetricsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "list health metrics", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, items)
	}
}

// getMetricHandler godoc
// @Summary Obtener métrica de salud
// @Tags health
// @Produce json
// @Param metricID path string true "ID de la métrica"
// @Success 200 {object} Metric
// @Failure 404 {object} map[string]any "Health metric not found"
// @Failure 500 {object} map[string]any
// @Router /health/{metricID} [get]
func getMetricHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "metricID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpjson.WriteDetail(w, http.StatusNotFound, "Health metric not found")
				return
			}
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "get health metric", err)
			return
		}
		httpjson.WriteJSON(w, http.StatusOK, m)
	}
}

// deleteMetricHandler godoc
// @Summary Borrar métrica de salud
// @Tags health
// @Produce json
// @Param metricID path string true "ID de la métrica"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]any
// @Router /health/{metricID} [delete]
func deleteMetricHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "metricID")); err != nil {
			httpjson.InternalError(w, middleware.LoggerFrom(r.Context()), "delete health metric", err)
			return
		}
		httpjson.WriteOK(w)
	}
}
