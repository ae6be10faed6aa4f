package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-health/internal/core/port"
	"campaign-health/internal/observability"
)

const cacheKeyPrefix = "advisory:"

// CachedAdvisor remembers successful answers in Redis so that identical
// prompts for the same model within ttl do not hit the completion service
// again. Redis errors fall through to the wrapped advisor.
type CachedAdvisor struct {
	next   port.Advisor
	model  string
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedAdvisor wraps next. model identifies the backend and model that
// next talks to, e.g. "openai/gpt-4", and is part of every cache key.
func NewCachedAdvisor(next port.Advisor, model string, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedAdvisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedAdvisor{next: next, model: model, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *CachedAdvisor) Advise(ctx context.Context, req port.AdvisoryRequest) (string, error) {
	key := cacheKey(c.model, req)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil && cached != "":
		observability.AdvisorCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	case err == nil, errors.Is(err, redis.Nil):
		observability.AdvisorCacheTotal.WithLabelValues("miss").Inc()
	default:
		observability.AdvisorCacheTotal.WithLabelValues("error").Inc()
		c.logger.Warn("advisory cache read", slog.Any("error", err))
	}

	text, err := c.next.Advise(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		c.logger.Warn("advisory cache write", slog.Any("error", err))
	}
	return text, nil
}

func cacheKey(model string, req port.AdvisoryRequest) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(req.System))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(req.Temperature, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(req.MaxTokens)))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
