package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-health/internal/core/domain"
)

// demoCampaigns covers every rule: an idle campaign, an under-used one
// without conversions, a healthy one, one close to its limit with costly
// conversions and a paused one without a budget.
var demoCampaigns = []domain.CampaignMetrics{
	{ID: "demo-1", Name: "Brand Search", Platform: domain.PlatformGoogle, Budget: 100, Spend: 0, Conversions: 0, Status: domain.StatusEnabled},
	{ID: "demo-2", Name: "Retargeting", Platform: domain.PlatformFacebook, Budget: 100, Spend: 50, Conversions: 0, Status: domain.StatusEnabled},
	{ID: "demo-3", Name: "Lead Gen", Platform: domain.PlatformLinkedIn, Budget: 100, Spend: 90, Conversions: 10, Status: domain.StatusEnabled},
	{ID: "demo-4", Name: "Video Reach", Platform: domain.PlatformTikTok, Budget: 200, Spend: 196, Conversions: 2, Status: domain.StatusEnabled},
	{ID: "demo-5", Name: "Shopping", Platform: domain.PlatformMicrosoft, Budget: 0, Spend: 25, Conversions: 0, Status: domain.StatusPaused},
}

// Seed inserts the demo campaigns. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for _, c := range demoCampaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, platform, budget, spend, conversions, status, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT DO NOTHING`,
			c.ID, c.Name, string(c.Platform), c.Budget, c.Spend, c.Conversions, string(c.Status))
		if err != nil {
			return err
		}
	}
	return nil
}
