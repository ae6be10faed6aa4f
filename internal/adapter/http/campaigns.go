package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-health/internal/core/domain"
)

// handlePutCampaign stores the metrics snapshot in the body under the id
// from the path, which overrides any id in the body.
func (h *Handler) handlePutCampaign(w http.ResponseWriter, r *http.Request) {
	var m domain.CampaignMetrics
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := applyUnits(r, &m); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.ID = chi.URLParam(r, "id")
	if err := h.svc.SaveCampaign(r.Context(), m); err != nil {
		h.writeError(w, "save campaign error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list campaigns error", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.CampaignMetrics{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignHealth(w http.ResponseWriter, r *http.Request) {
	eval, err := h.svc.EvaluateCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "evaluate campaign error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, eval)
}

// handleEvaluateAll evaluates every stored campaign, the dashboard view.
func (h *Handler) handleEvaluateAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.EvaluateAllCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "evaluate all error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBatchItems(results))
}

// handleListAnalyses returns stored advisory analyses, newest first. The
// optional limit query parameter must be a positive integer.
func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	analyses, err := h.svc.ListAnalyses(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.logger.Error("list analyses error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if analyses == nil {
		analyses = []domain.Analysis{}
	}
	h.writeJSON(w, http.StatusOK, analyses)
}
