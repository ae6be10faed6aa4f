package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-health/internal/config/configs"
)

// NewRedisClient connects to cfg.Addr and pings it. It returns a nil client
// and no error when Addr is empty, which disables the advisory cache.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
