package port

import (
	"context"
	"errors"
	"time"

	"campaign-health/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// HealthUseCase defines the business operations exposed by the health
// service. This interface is the primary port into the application domain.
type HealthUseCase interface {
	// Evaluate runs the health rules, and the advisory step when configured,
	// for one metrics record. It returns an error wrapping
	// domain.ErrInvalidMetrics when the record fails validation; advisory and
	// persistence failures never surface as errors.
	Evaluate(ctx context.Context, m domain.CampaignMetrics) (*Evaluation, error)

	// EvaluateBatch evaluates every record concurrently. Results are returned
	// in input order, each with its own error.
	EvaluateBatch(ctx context.Context, ms []domain.CampaignMetrics) []BatchResult

	// SaveCampaign validates and stores a metrics snapshot.
	SaveCampaign(ctx context.Context, m domain.CampaignMetrics) error

	// ListCampaigns returns all stored snapshots.
	ListCampaigns(ctx context.Context) ([]domain.CampaignMetrics, error)

	// EvaluateCampaign evaluates a stored snapshot. ErrCampaignNotFound is
	// returned for unknown ids.
	EvaluateCampaign(ctx context.Context, id string) (*Evaluation, error)

	// EvaluateAllCampaigns evaluates every stored snapshot.
	EvaluateAllCampaigns(ctx context.Context) ([]BatchResult, error)

	// ListAnalyses returns persisted advisory analyses for a campaign.
	ListAnalyses(ctx context.Context, campaignID string, limit int) ([]domain.Analysis, error)
}

// AdvisoryStatus reports what happened to the optional advisory step.
type AdvisoryStatus string

const (
	// AdvisorySkipped means no advisor is configured.
	AdvisorySkipped AdvisoryStatus = "skipped"
	// AdvisoryCompleted means an "AI Analysis" issue was appended.
	AdvisoryCompleted AdvisoryStatus = "completed"
	// AdvisoryUnavailable means the advisor failed and an "Analysis Error"
	// issue was appended instead.
	AdvisoryUnavailable AdvisoryStatus = "unavailable"
)

// Evaluation is the result of evaluating one campaign. Issues holds the
// rule findings in rule order followed by at most one advisory issue.
// AnalysisID is set only when the advisory text was persisted.
type Evaluation struct {
	CampaignID  string         `json:"campaignId"`
	Issues      []domain.Issue `json:"issues"`
	Advisory    AdvisoryStatus `json:"advisory"`
	AnalysisID  string         `json:"analysisId,omitempty"`
	EvaluatedAt time.Time      `json:"evaluatedAt"`
}

// BatchResult pairs a campaign with its evaluation or the error that
// prevented it.
type BatchResult struct {
	CampaignID string
	Evaluation *Evaluation
	Err        error
}
