package configs

import (
	"fmt"

	"campaign-health/internal/core/health"
)

// Evaluator holds the rule thresholds and batch settings.
type Evaluator struct {
	LowUtilizationPercent float64 `env:"LOW_UTILIZATION_PERCENT" envDefault:"80"`
	CostRatio             float64 `env:"COST_RATIO" envDefault:"0.3"`
	NearLimitRatio        float64 `env:"NEAR_LIMIT_RATIO" envDefault:"0.95"`
	BatchConcurrency      int     `env:"BATCH_CONCURRENCY" envDefault:"8"`
}

func (c Evaluator) Thresholds() health.Thresholds {
	return health.Thresholds{
		LowUtilizationPercent: c.LowUtilizationPercent,
		CostRatio:             c.CostRatio,
		NearLimitRatio:        c.NearLimitRatio,
	}
}

// Validate checks the thresholds and the batch limit.
func (c Evaluator) Validate() error {
	if err := c.Thresholds().Validate(); err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("eval: batch concurrency must be positive, got %d", c.BatchConcurrency)
	}
	return nil
}
