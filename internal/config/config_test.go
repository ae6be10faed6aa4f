package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-health/internal/config/configs"
	"campaign-health/internal/core/health"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, configs.AdvisorNone, cfg.Advisor.NormalizedProvider())
	assert.Equal(t, 0.7, cfg.Advisor.Temperature)
	assert.Equal(t, 500, cfg.Advisor.MaxTokens)
	assert.Equal(t, 15*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, uint(1), cfg.Advisor.MaxAttempts)
	assert.Equal(t, health.DefaultThresholds(), cfg.Eval.Thresholds())
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADVISOR_PROVIDER", "OpenAI")
	t.Setenv("ADVISOR_TIMEOUT", "3s")
	t.Setenv("ADVISOR_CACHE_TTL", "1h")
	t.Setenv("EVAL_LOW_UTILIZATION_PERCENT", "60")
	t.Setenv("EVAL_COST_RATIO", "0.5")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/health?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, configs.AdvisorOpenAI, cfg.Advisor.NormalizedProvider())
	assert.Equal(t, 3*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, time.Hour, cfg.Advisor.CacheTTL)
	assert.Equal(t, 60.0, cfg.Eval.Thresholds().LowUtilizationPercent)
	assert.Equal(t, 0.5, cfg.Eval.Thresholds().CostRatio)
	assert.Equal(t, 0.95, cfg.Eval.Thresholds().NearLimitRatio)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative cost ratio", "EVAL_COST_RATIO", "-0.3"},
		{"NaN near limit", "EVAL_NEAR_LIMIT_RATIO", "NaN"},
		{"zero utilization", "EVAL_LOW_UTILIZATION_PERCENT", "0"},
		{"utilization above 100", "EVAL_LOW_UTILIZATION_PERCENT", "150"},
		{"infinite cost ratio", "EVAL_COST_RATIO", "+Inf"},
		{"zero batch concurrency", "EVAL_BATCH_CONCURRENCY", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "eval:")
		})
	}
}

func TestLoad_UnknownAdvisorProvider(t *testing.T) {
	t.Setenv("ADVISOR_PROVIDER", "opneai")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opneai")
}

func TestLogger_New(t *testing.T) {
	var buf bytes.Buffer
	logger := configs.Logger{Level: "warn", Format: "JSON"}.New(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "campaign_id", "c-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "c-1", entry["campaign_id"])
}
