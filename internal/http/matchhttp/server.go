package matchhttp

import (
	"context"
	"log/slog"

	"preference_match/internal/config"
	"preference_match/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchService описывает бизнес-логику подбора объявлений под предпочтение.
type MatchService interface {
	MatchPreference(ctx context.Context, preferenceID uuid.UUID, req domain.PageRequest) (domain.Page[domain.MatchResult], error)
}

type matchServer struct {
	log          *slog.Logger
	service      MatchService
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
}

// Register регистрирует маршруты матчинга в роутере.
func Register(r chi.Router, log *slog.Logger, svc MatchService, cfg config.MatchingConfig) {
	s := &matchServer{
		log:          log,
		service:      svc,
		validate:     validator.New(),
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
	if s.defaultLimit < 1 {
		s.defaultLimit = domain.DefaultPageSize
	}
	if s.maxLimit < 1 {
		s.maxLimit = domain.MaxPageSize
	}

	r.Get("/preferences/{id}/matches", s.MatchPreference)
}
