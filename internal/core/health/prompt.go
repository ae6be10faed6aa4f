package health

import (
	"fmt"
	"strings"

	"campaign-health/internal/core/domain"
)

// AnalystPersona is the fixed system instruction sent with every advisory
// request.
const AnalystPersona = "You are an expert advertising campaign analyst with extensive experience " +
	"identifying problems and opportunities for improvement. Focus on practical insights that can be acted on."

// BuildPrompt renders the advisory prompt for one campaign.
func BuildPrompt(m domain.CampaignMetrics, d Derived) string {
	utilization := "n/a (no budget configured)"
	if d.HasBudget {
		utilization = fmt.Sprintf("%.1f%%", d.Utilization)
	}
	cpc := "no conversions"
	if d.HasConversions {
		cpc = fmt.Sprintf("%.2f", d.CostPerConversion)
	}

	var b strings.Builder
	b.WriteString("Analyze the performance of the following campaign and identify problems and opportunities for improvement:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Platform: %s\n", m.Platform)
	fmt.Fprintf(&b, "Budget: %s\n", formatAmount(m.Budget))
	fmt.Fprintf(&b, "Spend: %s\n", formatAmount(m.Spend))
	fmt.Fprintf(&b, "Conversions: %d\n", m.Conversions)
	fmt.Fprintf(&b, "Status: %s\n", m.Status)
	fmt.Fprintf(&b, "Budget utilization: %s\n", utilization)
	fmt.Fprintf(&b, "Cost per conversion: %s\n\n", cpc)
	b.WriteString("Please address:\n")
	b.WriteString("1. Is the campaign using its budget efficiently?\n")
	b.WriteString("2. Are there signs of problems with the target audience?\n")
	b.WriteString("3. Is the cost per conversion reasonable for the industry?\n")
	b.WriteString("4. What are the main opportunities for improvement?\n")
	b.WriteString("5. Are there specific optimization recommendations?\n\n")
	b.WriteString("Give a short, focused answer with practical recommendations.")
	return b.String()
}
