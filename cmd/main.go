package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaign-health/internal/adapter/advisor"
	httpadapter "campaign-health/internal/adapter/http"
	"campaign-health/internal/adapter/postgres"
	"campaign-health/internal/adapter/usecase"
	"campaign-health/internal/config"
	"campaign-health/internal/db"
)

// main is the entry point of the campaign health service. It loads
// configuration, optionally migrates and seeds the database, wires the
// repository, advisor and use case, then serves HTTP until SIGINT or
// SIGTERM and shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo campaigns seeded")
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	if rdb != nil {
		defer rdb.Close()
	}

	adv, err := advisor.New(ctx, cfg.Advisor, rdb, logger)
	if err != nil {
		logger.Error("advisor setup error", slog.Any("error", err))
		return
	}
	logger.Info("advisor configured",
		slog.String("provider", cfg.Advisor.NormalizedProvider()),
		slog.Bool("cache", rdb != nil && cfg.Advisor.CacheTTL > 0),
	)

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewHealthUseCase(repo, adv, logger, usecase.Options{
		Thresholds:       cfg.Eval.Thresholds(),
		AdvisorTimeout:   cfg.Advisor.Timeout,
		Temperature:      cfg.Advisor.Temperature,
		MaxTokens:        cfg.Advisor.MaxTokens,
		BatchConcurrency: cfg.Eval.BatchConcurrency,
	})

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
