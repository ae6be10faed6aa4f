package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-health/internal/core/domain"
	"campaign-health/internal/core/health"
	"campaign-health/internal/core/port"
	"campaign-health/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func campaign(id string, budget, spend float64, conversions int64) domain.CampaignMetrics {
	return domain.CampaignMetrics{
		ID:          id,
		Name:        "Campaign " + id,
		Platform:    domain.PlatformGoogle,
		Budget:      budget,
		Spend:       spend,
		Conversions: conversions,
		Status:      domain.StatusEnabled,
	}
}

func issueTypes(issues []domain.Issue) []domain.IssueType {
	out := make([]domain.IssueType, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Type)
	}
	return out
}

func newUseCase(repo port.CampaignRepository, advisor port.Advisor) *HealthUseCase {
	return NewHealthUseCase(repo, advisor, discardLogger(), Options{
		AdvisorTimeout: 50 * time.Millisecond,
		Temperature:    0.7,
		MaxTokens:      500,
	})
}

// TestEvaluate_NoAdvisor ensures only rule issues are returned when no
// advisor is configured.
func TestEvaluate_NoAdvisor(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewHealthUseCase(repo, nil, discardLogger(), Options{})

	eval, err := u.Evaluate(context.Background(), campaign("a", 100, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, "a", eval.CampaignID)
	assert.Equal(t, port.AdvisorySkipped, eval.Advisory)
	assert.Equal(t, []domain.IssueType{domain.IssueUnusedBudget}, issueTypes(eval.Issues))
	assert.Empty(t, eval.AnalysisID)
}

func TestEvaluate_CleanCampaign(t *testing.T) {
	u := newUseCase(mocks.NewMockCampaignRepository(t), nil)

	eval, err := u.Evaluate(context.Background(), campaign("a", 100, 85, 10))
	require.NoError(t, err)
	require.NotNil(t, eval.Issues)
	assert.Empty(t, eval.Issues)
}

// TestEvaluate_AdvisorSuccess ensures the advisory text is appended last as
// a medium issue and persisted with the derived metrics.
func TestEvaluate_AdvisorSuccess(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	advisor := mocks.NewMockAdvisor(t)

	in := campaign("b", 100, 50, 0)

	advisor.EXPECT().
		Advise(mock.Anything, mock.MatchedBy(func(req port.AdvisoryRequest) bool {
			return req.System == health.AnalystPersona &&
				req.MaxTokens == 500 &&
				req.Temperature == 0.7 &&
				req.Prompt == health.BuildPrompt(in, health.Derive(in))
		})).
		Return("  Tighten targeting and verify the conversion pixel.  ", nil)

	var recorded domain.Analysis
	repo.EXPECT().
		RecordAnalysis(mock.Anything, mock.AnythingOfType("domain.Analysis")).
		Run(func(_ context.Context, a domain.Analysis) { recorded = a }).
		Return(nil)

	u := newUseCase(repo, advisor)
	eval, err := u.Evaluate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []domain.IssueType{
		domain.IssueLowUtilization,
		domain.IssueNoConversions,
		domain.IssueAIAnalysis,
	}, issueTypes(eval.Issues))

	last := eval.Issues[len(eval.Issues)-1]
	assert.Equal(t, domain.SeverityMedium, last.Severity)
	assert.Equal(t, "Tighten targeting and verify the conversion pixel.", last.Description)
	assert.NotEmpty(t, last.SuggestedFix)

	assert.Equal(t, port.AdvisoryCompleted, eval.Advisory)
	assert.Equal(t, recorded.ID, eval.AnalysisID)
	assert.Equal(t, "b", recorded.CampaignID)
	assert.Equal(t, last.Description, recorded.Text)
	assert.False(t, recorded.CreatedAt.IsZero())
	assert.Equal(t, domain.DerivedMetrics{
		BudgetUtilization: 50,
		CostPerConversion: 0,
		TotalSpend:        50,
		Conversions:       0,
	}, recorded.Metrics)
}

func TestEvaluate_AdvisorFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a *mocks.MockAdvisor)
	}{
		{
			name: "transport error",
			setup: func(a *mocks.MockAdvisor) {
				a.EXPECT().Advise(mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
			},
		},
		{
			name: "empty content",
			setup: func(a *mocks.MockAdvisor) {
				a.EXPECT().Advise(mock.Anything, mock.Anything).Return("   ", nil)
			},
		},
		{
			name: "timeout",
			setup: func(a *mocks.MockAdvisor) {
				a.EXPECT().Advise(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, _ port.AdvisoryRequest) (string, error) {
						<-ctx.Done()
						return "", ctx.Err()
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			advisor := mocks.NewMockAdvisor(t)
			tt.setup(advisor)

			in := campaign("c", 100, 50, 0)
			deterministic := health.Evaluate(in, health.DefaultThresholds())

			u := newUseCase(repo, advisor)
			eval, err := u.Evaluate(context.Background(), in)
			require.NoError(t, err)

			require.Len(t, eval.Issues, len(deterministic)+1)
			assert.Equal(t, deterministic, eval.Issues[:len(deterministic)])

			last := eval.Issues[len(eval.Issues)-1]
			assert.Equal(t, domain.IssueAnalysisUnavailable, last.Type)
			assert.Equal(t, domain.SeverityLow, last.Severity)
			assert.Equal(t, port.AdvisoryUnavailable, eval.Advisory)
			assert.Empty(t, eval.AnalysisID)

			repo.AssertNotCalled(t, "RecordAnalysis", mock.Anything, mock.Anything)
		})
	}
}

// TestEvaluate_AdvisorTimeoutIsIndependent ensures the advisor deadline is
// applied even when the caller has none.
func TestEvaluate_AdvisorTimeoutIsIndependent(t *testing.T) {
	advisor := mocks.NewMockAdvisor(t)
	advisor.EXPECT().Advise(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ port.AdvisoryRequest) (string, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return "ok", nil
		})

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().RecordAnalysis(mock.Anything, mock.Anything).Return(nil)

	_, err := newUseCase(repo, advisor).Evaluate(context.Background(), campaign("d", 100, 96, 5))
	require.NoError(t, err)
}

func TestEvaluate_PersistFailureKeepsIssues(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	advisor := mocks.NewMockAdvisor(t)

	advisor.EXPECT().Advise(mock.Anything, mock.Anything).Return("Raise the budget.", nil)
	repo.EXPECT().RecordAnalysis(mock.Anything, mock.Anything).Return(errors.New("db down"))

	eval, err := newUseCase(repo, advisor).Evaluate(context.Background(), campaign("e", 100, 96, 5))
	require.NoError(t, err)

	assert.Equal(t, []domain.IssueType{domain.IssueBudgetNearingLimit, domain.IssueAIAnalysis}, issueTypes(eval.Issues))
	assert.Equal(t, port.AdvisoryCompleted, eval.Advisory)
	assert.Empty(t, eval.AnalysisID)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	advisor := mocks.NewMockAdvisor(t)
	u := newUseCase(mocks.NewMockCampaignRepository(t), advisor)

	in := campaign("f", -5, 10, 1)
	eval, err := u.Evaluate(context.Background(), in)

	assert.Nil(t, eval)
	assert.ErrorIs(t, err, domain.ErrInvalidMetrics)
	advisor.AssertNotCalled(t, "Advise", mock.Anything, mock.Anything)
}

// TestEvaluateBatch ensures results keep input order and that one invalid
// record does not abort the others.
func TestEvaluateBatch(t *testing.T) {
	advisor := mocks.NewMockAdvisor(t)
	repo := mocks.NewMockCampaignRepository(t)

	var inFlight, peak atomic.Int32
	advisor.EXPECT().Advise(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.AdvisoryRequest) (string, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return "advice", nil
		})
	repo.EXPECT().RecordAnalysis(mock.Anything, mock.Anything).Return(nil)

	u := NewHealthUseCase(repo, advisor, discardLogger(), Options{
		AdvisorTimeout:   time.Second,
		BatchConcurrency: 2,
	})

	in := []domain.CampaignMetrics{
		campaign("1", 100, 0, 0),
		campaign("2", 100, 50, 0),
		{ID: "3", Platform: "unknown", Status: domain.StatusEnabled},
		campaign("4", 100, 96, 5),
		campaign("5", 100, 85, 10),
	}

	results := u.EvaluateBatch(context.Background(), in)
	require.Len(t, results, len(in))

	for i, r := range results {
		assert.Equal(t, in[i].ID, r.CampaignID)
	}

	assert.ErrorIs(t, results[2].Err, domain.ErrInvalidMetrics)
	assert.Nil(t, results[2].Evaluation)

	for _, i := range []int{0, 1, 3, 4} {
		require.NoError(t, results[i].Err)
		issues := results[i].Evaluation.Issues
		assert.Equal(t, domain.IssueAIAnalysis, issues[len(issues)-1].Type)
	}
	assert.Equal(t, domain.IssueUnusedBudget, results[0].Evaluation.Issues[0].Type)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestEvaluateCampaign(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

		_, err := newUseCase(repo, nil).EvaluateCampaign(context.Background(), "missing")
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, "x").Return(nil, errors.New("boom"))

		_, err := newUseCase(repo, nil).EvaluateCampaign(context.Background(), "x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("stored campaign", func(t *testing.T) {
		stored := campaign("g", 100, 50, 0)
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetCampaign(mock.Anything, "g").Return(&stored, nil)

		eval, err := newUseCase(repo, nil).EvaluateCampaign(context.Background(), "g")
		require.NoError(t, err)
		assert.Equal(t, []domain.IssueType{domain.IssueLowUtilization, domain.IssueNoConversions}, issueTypes(eval.Issues))
	})
}

func TestEvaluateAllCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.CampaignMetrics{
		campaign("1", 100, 0, 0),
		campaign("2", 100, 96, 5),
	}, nil)

	results, err := newUseCase(repo, nil).EvaluateAllCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].CampaignID)
	assert.Equal(t, "2", results[1].CampaignID)
}

func TestSaveCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	in := campaign("h", 100, 10, 1)
	repo.EXPECT().UpsertCampaign(mock.Anything, in).Return(nil)

	u := newUseCase(repo, nil)
	require.NoError(t, u.SaveCampaign(context.Background(), in))

	err := u.SaveCampaign(context.Background(), domain.CampaignMetrics{ID: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidMetrics)
}

func TestListAnalyses_Limit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 20},
		{-1, 20},
		{5, 5},
		{1000, 100},
	}
	for _, tt := range tests {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().ListAnalyses(mock.Anything, "c", tt.want).Return(nil, nil)

		_, err := newUseCase(repo, nil).ListAnalyses(context.Background(), "c", tt.in)
		require.NoError(t, err)
	}
}
