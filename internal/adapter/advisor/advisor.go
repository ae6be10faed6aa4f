// Package advisor holds the outbound adapters that implement port.Advisor:
// an OpenAI-compatible HTTP client, an AWS Bedrock client and a Redis
// cache that can wrap either of them.
package advisor

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"campaign-health/internal/config/configs"
	"campaign-health/internal/core/port"
)

// New builds the advisor selected by cfg.Provider. It returns a nil
// advisor for the "none" provider and an error for unknown providers. When
// rdb is non-nil and cfg.CacheTTL is positive the advisor is wrapped in a
// CachedAdvisor scoped to the provider and model.
func New(ctx context.Context, cfg configs.Advisor, rdb *redis.Client, logger *slog.Logger) (port.Advisor, error) {
	var (
		a     port.Advisor
		model string
	)
	switch cfg.NormalizedProvider() {
	case configs.AdvisorOpenAI:
		a, model = NewOpenAIAdvisor(cfg, nil), cfg.Model
	case configs.AdvisorBedrock:
		model = cfg.BedrockModelID
		b, err := NewBedrockAdvisor(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a = b
	case configs.AdvisorNone:
		return nil, nil
	default:
		return nil, cfg.Validate()
	}

	if rdb != nil && cfg.CacheTTL > 0 {
		a = NewCachedAdvisor(a, cfg.NormalizedProvider()+"/"+model, rdb, cfg.CacheTTL, logger)
	}
	return a, nil
}
