package app

import (
	"context"
	"log/slog"

	httpapp "preference_match/internal/app/http"
	"preference_match/internal/config"
	"preference_match/internal/lib/logger/sl"
	"preference_match/internal/lib/metrics"
	"preference_match/internal/repository/preference_repository"
	"preference_match/internal/repository/property_repository"
	"preference_match/internal/services/matching"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

type App struct {
	HTTPServer *httpapp.App
	Metrics    *metrics.MatchMetrics

	redis *redis.Client
	log   *slog.Logger
}

func New(log *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	matchMetrics := metrics.NewMatchMetrics(log, registry)

	propertyRepository := property_repository.NewPropertyRepository(pool, log)
	preferenceRepository := preference_repository.NewPreferenceRepository(pool, log)

	// Кэш предпочтений в Redis опционален
	var preferences matching.PreferenceRepository = preferenceRepository
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		preferences = preference_repository.NewCachedRepository(preferenceRepository, redisClient, cfg.Redis.PreferenceTTL, log)
	}

	log.Info("matching initialized",
		slog.Int("min_score", cfg.Matching.MinScore),
		slog.Int("priority_percent", cfg.Matching.PriorityPercent),
		slog.Int("scoring_workers", cfg.Matching.ScoringWorkers),
		slog.Bool("redis_cache_enabled", cfg.Redis.Enabled),
	)

	matchService := matching.New(log, preferences, propertyRepository, cfg.Matching, matchMetrics)

	httpApp := httpapp.New(log, matchService, registry, cfg.HTTP, cfg.Matching)

	return &App{
		HTTPServer: httpApp,
		Metrics:    matchMetrics,
		redis:      redisClient,
		log:        log,
	}
}

// Stop останавливает HTTP-сервер и закрывает внешние соединения.
func (a *App) Stop(ctx context.Context) {
	a.HTTPServer.Stop(ctx)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis client", sl.Err(err))
		}
	}
}
