package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"preference_match/internal/config"
	"preference_match/internal/http/matchhttp"
	"preference_match/internal/http/middleware/mwlogger"
	"preference_match/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

// New создаёт HTTP-приложение: роутер, middleware и служебные эндпоинты.
func New(
	log *slog.Logger,
	matchService matchhttp.MatchService,
	gatherer prometheus.Gatherer,
	cfg config.HTTPConfig,
	matchingCfg config.MatchingConfig,
) *App {
	router := NewRouter(log, matchService, gatherer, cfg, matchingCfg)

	return &App{
		log: log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		port: cfg.Port,
	}
}

// NewRouter собирает chi-роутер с CORS, логированием запросов и метриками.
func NewRouter(
	log *slog.Logger,
	matchService matchhttp.MatchService,
	gatherer prometheus.Gatherer,
	cfg config.HTTPConfig,
	matchingCfg config.MatchingConfig,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	matchhttp.Register(router, log, matchService, matchingCfg)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}).Handler(router)
}

// MustRun запускает HTTP-сервер и паникует при ошибке.
func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

// Run запускает HTTP-сервер.
func (a *App) Run() error {
	const op = "httpapp.Run"

	a.log.Info("http server started", slog.String("op", op), slog.Int("port", a.port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Stop корректно останавливает HTTP-сервер, дожидаясь завершения активных запросов.
func (a *App) Stop(ctx context.Context) {
	const op = "httpapp.Stop"

	a.log.With(slog.String("op", op)).Info("stopping http server", slog.Int("port", a.port))

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("http server shutdown failed", slog.String("op", op), sl.Err(err))
	}
}
