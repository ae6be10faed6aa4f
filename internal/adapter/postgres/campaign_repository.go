package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-health/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// UpsertCampaign inserts or replaces the stored snapshot for m.ID.
func (r *CampaignRepository) UpsertCampaign(ctx context.Context, m domain.CampaignMetrics) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, platform, budget, spend, conversions, status, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now())
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    platform = EXCLUDED.platform,
    budget = EXCLUDED.budget,
    spend = EXCLUDED.spend,
    conversions = EXCLUDED.conversions,
    status = EXCLUDED.status,
    updated_at = EXCLUDED.updated_at`,
		m.ID, m.Name, string(m.Platform), m.Budget, m.Spend, m.Conversions, string(m.Status))
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.CampaignMetrics, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, platform, budget, spend, conversions, status FROM campaigns WHERE id = $1`, id)
	m, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListCampaigns returns every stored campaign ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignMetrics, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, platform, budget, spend, conversions, status FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignMetrics, error) {
		return scanCampaign(row)
	})
}

// RecordAnalysis stores an advisory analysis with its metrics snapshot.
func (r *CampaignRepository) RecordAnalysis(ctx context.Context, a domain.Analysis) error {
	metrics, err := json.Marshal(a.Metrics)
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaign_analyses (id, campaign_id, analysis, metrics, created_at) VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.CampaignID, a.Text, metrics, a.CreatedAt)
	return err
}

// ListAnalyses returns up to limit analyses for a campaign, newest first.
func (r *CampaignRepository) ListAnalyses(ctx context.Context, campaignID string, limit int) ([]domain.Analysis, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, campaign_id, analysis, metrics, created_at FROM campaign_analyses
WHERE campaign_id = $1 ORDER BY created_at DESC LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Analysis, error) {
		var (
			a   domain.Analysis
			raw []byte
		)
		if err := row.Scan(&a.ID, &a.CampaignID, &a.Text, &raw, &a.CreatedAt); err != nil {
			return a, err
		}
		if err := json.Unmarshal(raw, &a.Metrics); err != nil {
			return a, fmt.Errorf("decode metrics of analysis %s: %w", a.ID, err)
		}
		return a, nil
	})
}

func scanCampaign(row pgx.Row) (domain.CampaignMetrics, error) {
	var (
		m                domain.CampaignMetrics
		platform, status string
	)
	err := row.Scan(&m.ID, &m.Name, &platform, &m.Budget, &m.Spend, &m.Conversions, &status)
	m.Platform = domain.Platform(platform)
	m.Status = domain.Status(status)
	return m, err
}
