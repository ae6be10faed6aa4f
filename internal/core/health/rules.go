// Package health contains the deterministic campaign health rules and the
// advisory prompt built from the same metrics. Everything here is pure: no
// I/O, no clocks, no shared state.
package health

import (
	"fmt"
	"math"
	"strconv"

	"campaign-health/internal/core/domain"
)

// Thresholds controls when the ratio-based rules fire.
type Thresholds struct {
	// LowUtilizationPercent flags enabled campaigns spending less than this
	// share (0-100) of their budget.
	LowUtilizationPercent float64
	// CostRatio flags cost per conversion above Budget*CostRatio.
	CostRatio float64
	// NearLimitRatio flags enabled campaigns whose spend reaches
	// Budget*NearLimitRatio.
	NearLimitRatio float64
}

// Validate rejects thresholds that would make a rule fire for every campaign
// or never fire at all: each value must be finite and positive, and
// LowUtilizationPercent must not exceed 100.
func (t Thresholds) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"low utilization percent", t.LowUtilizationPercent},
		{"cost ratio", t.CostRatio},
		{"near limit ratio", t.NearLimitRatio},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%s must be a finite positive number, got %v", f.name, f.v)
		}
	}
	if t.LowUtilizationPercent > 100 {
		return fmt.Errorf("low utilization percent must not exceed 100, got %v", t.LowUtilizationPercent)
	}
	return nil
}

// DefaultThresholds returns 80% utilization, 30% cost ratio and 95% near-limit.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowUtilizationPercent: 80,
		CostRatio:             0.3,
		NearLimitRatio:        0.95,
	}
}

// Derived holds the ratios computed from one metrics record. A ratio is
// only meaningful when its Has* flag is set.
type Derived struct {
	Utilization       float64 // percent of budget spent
	HasBudget         bool
	CostPerConversion float64
	HasConversions    bool
}

// Derive computes utilization and cost per conversion without ever
// dividing by zero.
func Derive(m domain.CampaignMetrics) Derived {
	var d Derived
	if m.Budget > 0 {
		d.HasBudget = true
		d.Utilization = m.Spend / m.Budget * 100
	}
	if m.Conversions > 0 {
		d.HasConversions = true
		d.CostPerConversion = m.Spend / float64(m.Conversions)
	}
	return d
}

// Snapshot returns the persisted form of the derived ratios.
func (d Derived) Snapshot(m domain.CampaignMetrics) domain.DerivedMetrics {
	return domain.DerivedMetrics{
		BudgetUtilization: d.Utilization,
		CostPerConversion: d.CostPerConversion,
		TotalSpend:        m.Spend,
		Conversions:       m.Conversions,
	}
}

// exclusiveGroup ties rules together so that only the first firing rule of
// a group contributes an issue.
type exclusiveGroup int

const (
	noGroup exclusiveGroup = iota
	groupBudgetUsage
	groupConversions
)

type rule struct {
	group   exclusiveGroup
	applies func(m domain.CampaignMetrics, d Derived, th Thresholds) bool
	issue   func(m domain.CampaignMetrics, d Derived) domain.Issue
}

// rules is evaluated top to bottom; order is part of the output contract.
var rules = []rule{
	{
		group: groupBudgetUsage,
		applies: func(m domain.CampaignMetrics, _ Derived, _ Thresholds) bool {
			return m.Status == domain.StatusEnabled && m.Spend == 0
		},
		issue: func(m domain.CampaignMetrics, _ Derived) domain.Issue {
			return domain.Issue{
				Type:         domain.IssueUnusedBudget,
				Description:  fmt.Sprintf("Campaign %q is enabled but is not spending its budget", m.Name),
				Severity:     domain.SeverityHigh,
				SuggestedFix: "Review audience, ad and bidding settings. The bid may be too low or the audience too narrow.",
			}
		},
	},
	{
		group: groupBudgetUsage,
		applies: func(m domain.CampaignMetrics, d Derived, th Thresholds) bool {
			return m.Status == domain.StatusEnabled && d.HasBudget && d.Utilization < th.LowUtilizationPercent
		},
		issue: func(_ domain.CampaignMetrics, d Derived) domain.Issue {
			return domain.Issue{
				Type:         domain.IssueLowUtilization,
				Description:  fmt.Sprintf("Campaign is using only %.1f%% of its daily budget", d.Utilization),
				Severity:     domain.SeverityMedium,
				SuggestedFix: "Consider raising the bid or widening the target audience to increase reach.",
			}
		},
	},
	{
		group: groupConversions,
		applies: func(m domain.CampaignMetrics, _ Derived, _ Thresholds) bool {
			return m.Spend > 0 && m.Conversions == 0
		},
		issue: func(m domain.CampaignMetrics, _ Derived) domain.Issue {
			return domain.Issue{
				Type:         domain.IssueNoConversions,
				Description:  fmt.Sprintf("Campaign %q spent %s without any conversions", m.Name, formatAmount(m.Spend)),
				Severity:     domain.SeverityHigh,
				SuggestedFix: "Check landing pages, conversion tracking setup and how well the ads match the audience.",
			}
		},
	},
	{
		group: groupConversions,
		applies: func(m domain.CampaignMetrics, d Derived, th Thresholds) bool {
			return m.Spend > 0 && d.HasConversions && d.HasBudget &&
				d.CostPerConversion > m.Budget*th.CostRatio
		},
		issue: func(_ domain.CampaignMetrics, d Derived) domain.Issue {
			return domain.Issue{
				Type:         domain.IssueHighConversionCost,
				Description:  fmt.Sprintf("Cost per conversion (%.2f) is too high relative to the budget", d.CostPerConversion),
				Severity:     domain.SeverityMedium,
				SuggestedFix: "Review traffic quality, ad-to-audience fit and landing page optimization.",
			}
		},
	},
	{
		applies: func(m domain.CampaignMetrics, d Derived, th Thresholds) bool {
			return m.Status == domain.StatusEnabled && d.HasBudget && m.Spend >= m.Budget*th.NearLimitRatio
		},
		issue: func(_ domain.CampaignMetrics, d Derived) domain.Issue {
			return domain.Issue{
				Type:         domain.IssueBudgetNearingLimit,
				Description:  fmt.Sprintf("Campaign has used %.1f%% of its daily budget and is close to the limit", d.Utilization),
				Severity:     domain.SeverityLow,
				SuggestedFix: "Consider increasing the budget if the campaign is performing well.",
			}
		},
	},
}

// Evaluate applies the rule table to m and returns the detected issues in
// rule order. The result is never nil.
func Evaluate(m domain.CampaignMetrics, th Thresholds) []domain.Issue {
	d := Derive(m)
	issues := make([]domain.Issue, 0, len(rules))
	fired := make(map[exclusiveGroup]bool, 2)

	for _, r := range rules {
		if r.group != noGroup && fired[r.group] {
			continue
		}
		if !r.applies(m, d, th) {
			continue
		}
		issues = append(issues, r.issue(m, d))
		if r.group != noGroup {
			fired[r.group] = true
		}
	}
	return issues
}

// formatAmount prints a currency amount as written, without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
