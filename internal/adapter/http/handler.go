package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-health/internal/core/port"
	"campaign-health/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that exposes the health use case under /api/v1 together with /healthz
// and /metrics.
type Handler struct {
	svc    port.HealthUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.HealthUseCase, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, observability.Measure)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Post("/evaluate", h.handleEvaluate)
		r.Post("/evaluate/batch", h.handleEvaluateBatch)
		r.Get("/health", h.handleEvaluateAll)
		r.Put("/{id}", h.handlePutCampaign)
		r.Get("/{id}/health", h.handleCampaignHealth)
		r.Get("/{id}/analyses", h.handleListAnalyses)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
