package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"campaign-health/internal/core/domain"
	"campaign-health/internal/core/health"
	"campaign-health/internal/core/port"
	"campaign-health/internal/observability"
)

const (
	defaultAnalysesLimit = 20
	maxAnalysesLimit     = 100
)

// Options tunes the health use case. Zero values fall back to the defaults
// set by NewHealthUseCase.
type Options struct {
	// Thresholds must pass health.Thresholds.Validate. The zero value
	// selects health.DefaultThresholds.
	Thresholds health.Thresholds

	// AdvisorTimeout bounds a single advisory call independently of the
	// caller's deadline.
	AdvisorTimeout time.Duration
	Temperature    float64
	MaxTokens      int

	// BatchConcurrency limits how many campaigns of a batch are evaluated
	// at the same time.
	BatchConcurrency int
}

// HealthUseCase provides campaign evaluation on top of the pure rule
// engine. It orchestrates the optional advisor and the repository to
// implement the port.HealthUseCase interface.
type HealthUseCase struct {
	repo    port.CampaignRepository
	advisor port.Advisor
	logger  *slog.Logger
	opts    Options
	now     func() time.Time
}

// NewHealthUseCase creates a new use case. advisor may be nil, in which case
// the advisory step is skipped entirely.
func NewHealthUseCase(repo port.CampaignRepository, advisor port.Advisor, logger *slog.Logger, opts Options) *HealthUseCase {
	if opts.Thresholds == (health.Thresholds{}) {
		opts.Thresholds = health.DefaultThresholds()
	}
	if opts.AdvisorTimeout <= 0 {
		opts.AdvisorTimeout = 15 * time.Second
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.BatchConcurrency <= 0 {
		opts.BatchConcurrency = 8
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthUseCase{
		repo:    repo,
		advisor: advisor,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
	}
}

// Evaluate validates m, runs the deterministic rules and, when an advisor
// is configured, appends exactly one advisory issue. Only invalid input is
// reported as an error.
func (u *HealthUseCase) Evaluate(ctx context.Context, m domain.CampaignMetrics) (*port.Evaluation, error) {
	if err := m.Validate(); err != nil {
		observability.EvaluationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	derived := health.Derive(m)
	issues := health.Evaluate(m, u.opts.Thresholds)

	eval := &port.Evaluation{
		CampaignID:  m.ID,
		Advisory:    port.AdvisorySkipped,
		EvaluatedAt: u.now().UTC(),
	}

	if u.advisor != nil {
		text, err := u.advise(ctx, m, derived)
		if err != nil {
			u.logger.Warn("advisory analysis unavailable",
				slog.String("campaign_id", m.ID),
				slog.Any("error", err),
			)
			issues = append(issues, analysisUnavailableIssue())
			eval.Advisory = port.AdvisoryUnavailable
		} else {
			issues = append(issues, domain.Issue{
				Type:         domain.IssueAIAnalysis,
				Description:  text,
				Severity:     domain.SeverityMedium,
				SuggestedFix: "See the detailed recommendations in the description above.",
			})
			eval.Advisory = port.AdvisoryCompleted
			eval.AnalysisID = u.recordAnalysis(ctx, m, derived, text)
		}
	}

	eval.Issues = issues
	observability.EvaluationsTotal.WithLabelValues("ok").Inc()
	for _, issue := range issues {
		observability.IssuesTotal.WithLabelValues(string(issue.Type), string(issue.Severity)).Inc()
	}
	return eval, nil
}

// advise performs the single advisory call under its own timeout. Blank
// answers count as failures.
func (u *HealthUseCase) advise(ctx context.Context, m domain.CampaignMetrics, d health.Derived) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.opts.AdvisorTimeout)
	defer cancel()

	start := time.Now()
	text, err := u.advisor.Advise(ctx, port.AdvisoryRequest{
		System:      health.AnalystPersona,
		Prompt:      health.BuildPrompt(m, d),
		Temperature: u.opts.Temperature,
		MaxTokens:   u.opts.MaxTokens,
	})
	observability.AdvisorLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		observability.AdvisorRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		observability.AdvisorRequestsTotal.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("advisor returned no content")
	}
	observability.AdvisorRequestsTotal.WithLabelValues("ok").Inc()
	return text, nil
}

// recordAnalysis stores the advisory text and returns its id, or "" when
// the write failed. Failures are logged and never change the issues.
func (u *HealthUseCase) recordAnalysis(ctx context.Context, m domain.CampaignMetrics, d health.Derived, text string) string {
	a := domain.Analysis{
		ID:         uuid.NewString(),
		CampaignID: m.ID,
		Text:       text,
		Metrics:    d.Snapshot(m),
		CreatedAt:  u.now().UTC(),
	}
	if err := u.repo.RecordAnalysis(ctx, a); err != nil {
		observability.AnalysisPersistFailures.Inc()
		u.logger.Error("persist analysis",
			slog.String("campaign_id", m.ID),
			slog.Any("error", err),
		)
		return ""
	}
	return a.ID
}

func analysisUnavailableIssue() domain.Issue {
	return domain.Issue{
		Type:         domain.IssueAnalysisUnavailable,
		Description:  "Advanced analysis is unavailable right now, retry later.",
		Severity:     domain.SeverityLow,
		SuggestedFix: "Try again later or contact support.",
	}
}

// EvaluateBatch evaluates each record on its own goroutine, bounded by
// BatchConcurrency, and joins on completion. Results keep input order.
func (u *HealthUseCase) EvaluateBatch(ctx context.Context, ms []domain.CampaignMetrics) []port.BatchResult {
	results := make([]port.BatchResult, len(ms))

	var g errgroup.Group
	g.SetLimit(u.opts.BatchConcurrency)
	for i := range ms {
		g.Go(func() error {
			eval, err := u.Evaluate(ctx, ms[i])
			results[i] = port.BatchResult{CampaignID: ms[i].ID, Evaluation: eval, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// SaveCampaign validates and stores a metrics snapshot.
func (u *HealthUseCase) SaveCampaign(ctx context.Context, m domain.CampaignMetrics) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := u.repo.UpsertCampaign(ctx, m); err != nil {
		return fmt.Errorf("upsert campaign %s: %w", m.ID, err)
	}
	return nil
}

// ListCampaigns returns all stored snapshots.
func (u *HealthUseCase) ListCampaigns(ctx context.Context) ([]domain.CampaignMetrics, error) {
	return u.repo.ListCampaigns(ctx)
}

// EvaluateCampaign loads a stored snapshot and evaluates it.
func (u *HealthUseCase) EvaluateCampaign(ctx context.Context, id string) (*port.Evaluation, error) {
	m, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", id, err)
	}
	if m == nil {
		return nil, port.ErrCampaignNotFound
	}
	return u.Evaluate(ctx, *m)
}

// EvaluateAllCampaigns evaluates every stored snapshot, the way the
// dashboard renders its issue cards.
func (u *HealthUseCase) EvaluateAllCampaigns(ctx context.Context) ([]port.BatchResult, error) {
	ms, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return u.EvaluateBatch(ctx, ms), nil
}

// ListAnalyses returns stored analyses for a campaign. limit defaults to 20
// and is capped at 100.
func (u *HealthUseCase) ListAnalyses(ctx context.Context, campaignID string, limit int) ([]domain.Analysis, error) {
	if limit <= 0 {
		limit = defaultAnalysesLimit
	}
	if limit > maxAnalysesLimit {
		limit = maxAnalysesLimit
	}
	return u.repo.ListAnalyses(ctx, campaignID, limit)
}
