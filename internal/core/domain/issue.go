package domain

// Severity ranks how urgent an issue is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities so that high > medium > low. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// IssueType is the fixed taxonomy of detected issues.
type IssueType string

const (
	IssueUnusedBudget        IssueType = "Unused Budget"
	IssueLowUtilization      IssueType = "Low Budget Utilization"
	IssueNoConversions       IssueType = "No Conversions"
	IssueHighConversionCost  IssueType = "High Conversion Cost"
	IssueBudgetNearingLimit  IssueType = "Budget Nearing Limit"
	IssueAIAnalysis          IssueType = "AI Analysis"
	IssueAnalysisUnavailable IssueType = "Analysis Error"
)

// Issue is a single finding about a campaign. Issues are values and are
// never modified after they are created.
type Issue struct {
	Type         IssueType `json:"type"`
	Description  string    `json:"description"`
	Severity     Severity  `json:"severity"`
	SuggestedFix string    `json:"suggestedFix"`
}
