package port

import (
	"context"

	"campaign-health/internal/core/domain"
)

// AnalysisRecorder persists advisory analyses. It is the only write the
// evaluation itself performs.
type AnalysisRecorder interface {
	// RecordAnalysis stores the analysis text with its derived metrics,
	// keyed by campaign id and creation time.
	RecordAnalysis(ctx context.Context, a domain.Analysis) error
}

// CampaignRepository defines the persistence layer for campaign snapshots
// and their analyses. It is an outbound port in hexagonal architecture.
// Implementations must be safe for concurrent use.
type CampaignRepository interface {
	AnalysisRecorder

	// UpsertCampaign stores the latest metrics snapshot for a campaign.
	UpsertCampaign(ctx context.Context, m domain.CampaignMetrics) error
	// GetCampaign returns the stored snapshot, or nil when the id is unknown.
	GetCampaign(ctx context.Context, id string) (*domain.CampaignMetrics, error)
	// ListCampaigns returns all stored snapshots ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.CampaignMetrics, error)
	// ListAnalyses returns the most recent analyses for a campaign, newest first.
	ListAnalyses(ctx context.Context, campaignID string, limit int) ([]domain.Analysis, error)
}
