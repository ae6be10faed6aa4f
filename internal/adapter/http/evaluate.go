package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"campaign-health/internal/core/domain"
	"campaign-health/internal/core/port"
)

// batchItem is the wire form of port.BatchResult. Exactly one of
// Evaluation and Error is set. HighestSeverity lets a dashboard sort
// campaigns without walking every issue list.
type batchItem struct {
	CampaignID      string           `json:"campaignId"`
	Evaluation      *port.Evaluation `json:"evaluation,omitempty"`
	HighestSeverity domain.Severity  `json:"highestSeverity,omitempty"`
	Error           string           `json:"error,omitempty"`
}

func highestSeverity(issues []domain.Issue) domain.Severity {
	var top domain.Severity
	for _, issue := range issues {
		if top == "" || issue.Severity.Rank() > top.Rank() {
			top = issue.Severity
		}
	}
	return top
}

func toBatchItems(results []port.BatchResult) []batchItem {
	items := make([]batchItem, 0, len(results))
	for _, res := range results {
		item := batchItem{CampaignID: res.CampaignID, Evaluation: res.Evaluation}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else if res.Evaluation != nil {
			item.HighestSeverity = highestSeverity(res.Evaluation.Issues)
		}
		items = append(items, item)
	}
	return items
}

// handleEvaluate evaluates the metrics record in the body. Malformed JSON
// gives 400 and a record failing validation gives 422. With units=micros
// budget and spend are read as platform micro-units.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var m domain.CampaignMetrics
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := applyUnits(r, &m); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	eval, err := h.svc.Evaluate(r.Context(), m)
	if err != nil {
		h.writeError(w, "evaluate error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, eval)
}

// handleEvaluateBatch evaluates a JSON array of records. Per-record
// failures are reported in the matching item, not as a request error.
func (h *Handler) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var ms []domain.CampaignMetrics
	if err := json.NewDecoder(r.Body).Decode(&ms); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	for i := range ms {
		if err := applyUnits(r, &ms[i]); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	results := h.svc.EvaluateBatch(r.Context(), ms)
	h.writeJSON(w, http.StatusOK, toBatchItems(results))
}

// applyUnits converts Budget and Spend from platform micro-units when the
// request carries units=micros. Any other value besides "" is rejected.
func applyUnits(r *http.Request, m *domain.CampaignMetrics) error {
	switch u := r.URL.Query().Get("units"); u {
	case "":
	case "micros":
		m.Budget = domain.MicrosToUnits(m.Budget)
		m.Spend = domain.MicrosToUnits(m.Spend)
	default:
		return fmt.Errorf("unknown units %q", u)
	}
	return nil
}

// writeError maps use case errors to status codes.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMetrics):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error(msg, slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
