package domain

import "time"

// DerivedMetrics is the snapshot of computed ratios stored alongside an
// advisory analysis. Ratios that are undefined for the record (no budget,
// no conversions) are stored as zero.
type DerivedMetrics struct {
	BudgetUtilization float64 `json:"budgetUtilization"`
	CostPerConversion float64 `json:"costPerConversion"`
	TotalSpend        float64 `json:"totalSpend"`
	Conversions       int64   `json:"conversions"`
}

// Analysis is a persisted advisory text produced for a campaign.
type Analysis struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaignId"`
	Text       string         `json:"analysis"`
	Metrics    DerivedMetrics `json:"metrics"`
	CreatedAt  time.Time      `json:"createdAt"`
}
