package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"preference_match/internal/config"
	"preference_match/internal/domain"
	"preference_match/internal/lib/logger/sl"
	"preference_match/internal/lib/metrics"
	"preference_match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PreferenceRepository — чтение предпочтения по ID.
type PreferenceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Preference, error)
}

// PropertyRepository — выборка всех объявлений, удовлетворяющих жёсткому фильтру.
type PropertyRepository interface {
	FetchCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Property, error)
}

var (
	// ErrPreferenceNotFound — предпочтение не найдено (клиентская ошибка).
	ErrPreferenceNotFound = errors.New("preference not found")
	// ErrInvalidPreference — в предпочтении нет обязательных полей (клиентская ошибка).
	ErrInvalidPreference = errors.New("invalid preference")
	// ErrCandidateFetch — хранилище объявлений недоступно (серверная ошибка, запрос можно повторить).
	ErrCandidateFetch = errors.New("candidate fetch failed")
)

type Service struct {
	log         *slog.Logger
	preferences PreferenceRepository
	properties  PropertyRepository
	policy      RankingPolicy
	workers     int
	metrics     *metrics.MatchMetrics
}

func New(
	log *slog.Logger,
	preferences PreferenceRepository,
	properties PropertyRepository,
	cfg config.MatchingConfig,
	m *metrics.MatchMetrics,
) *Service {
	workers := cfg.ScoringWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Service{
		log:         log,
		preferences: preferences,
		properties:  properties,
		policy: RankingPolicy{
			MinScore:        cfg.MinScore,
			PriorityPercent: cfg.PriorityPercent,
		},
		workers: workers,
		metrics: m,
	}
}

// MatchPreference находит, оценивает и ранжирует объявления для предпочтения и возвращает страницу.
// Повторный вызов с теми же данными хранилища даёт тот же результат.
func (s *Service) MatchPreference(ctx context.Context, preferenceID uuid.UUID, req domain.PageRequest) (domain.Page[domain.MatchResult], error) {
	const op = "matching.Service.MatchPreference"
	log := s.log.With(slog.String("op", op), slog.String("preference_id", preferenceID.String()))

	timer := s.metrics.StartTimer(metrics.StagePreference)
	pref, err := s.preferences.GetByID(ctx, preferenceID)
	timer.Stop(err)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			log.Warn("preference not found")
			s.metrics.RecordRequest("", metrics.OutcomeNotFound)
			return domain.Page[domain.MatchResult]{}, fmt.Errorf("%s: %w", op, ErrPreferenceNotFound)
		}
		log.Error("failed to get preference", sl.Err(err))
		s.metrics.RecordRequest("", outcomeFor(err))
		return domain.Page[domain.MatchResult]{}, fmt.Errorf("%s: %w", op, err)
	}

	prefType := pref.Type.String()

	constraints, err := NormalizePreference(pref)
	if err != nil {
		log.Warn("preference cannot be matched", sl.Err(err))
		s.metrics.RecordRequest(prefType, metrics.OutcomeInvalidPreference)
		return domain.Page[domain.MatchResult]{}, fmt.Errorf("%s: %w", op, err)
	}

	filter := BuildCandidateFilter(constraints)

	timer = s.metrics.StartTimer(metrics.StageCandidates)
	candidates, err := s.properties.FetchCandidates(ctx, filter)
	timer.Stop(err)
	if err != nil {
		log.Error("failed to fetch candidates", sl.Err(err))
		outcome := metrics.OutcomeFetchError
		if ctxErr := ctx.Err(); ctxErr != nil {
			outcome = metrics.OutcomeCanceled
			// драйвер не всегда оборачивает ошибку контекста
			if !errors.Is(err, ctxErr) {
				err = fmt.Errorf("%w: %w", ctxErr, err)
			}
		}
		s.metrics.RecordRequest(prefType, outcome)
		return domain.Page[domain.MatchResult]{}, fmt.Errorf("%s: %w: %w", op, ErrCandidateFetch, err)
	}

	timer = s.metrics.StartTimer(metrics.StageScoring)
	scored, err := s.scoreCandidates(ctx, constraints, candidates)
	timer.Stop(err)
	if err != nil {
		log.Warn("scoring aborted", sl.Err(err))
		s.metrics.RecordRequest(prefType, outcomeFor(err))
		return domain.Page[domain.MatchResult]{}, fmt.Errorf("%s: %w", op, err)
	}

	timer = s.metrics.StartTimer(metrics.StageRanking)
	ranked := Rank(scored, s.policy)
	timer.Stop(nil)

	s.metrics.RecordPool(len(candidates), len(ranked))
	s.metrics.RecordRequest(prefType, metrics.OutcomeOK)

	log.Info("preference matched",
		slog.String("preference_type", prefType),
		slog.Int("candidates", len(candidates)),
		slog.Int("ranked", len(ranked)),
	)

	return Paginate(ranked, req), nil
}

// scoreCandidates считает score параллельно ограниченным пулом горутин.
// При отмене контекста незавершённая работа бросается.
func (s *Service) scoreCandidates(ctx context.Context, c domain.PreferenceConstraints, candidates []domain.Property) ([]domain.ScoredCandidate, error) {
	scored := make([]domain.ScoredCandidate, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range candidates {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; module targets go 1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scored[i] = ScoreCandidate(c, candidates[i])
			s.log.Debug("candidate scored",
				slog.String("property_id", candidates[i].ID.String()),
				slog.Int("score", scored[i].Score),
				slog.Any("breakdown", scored[i].Breakdown),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return scored, nil
}

func outcomeFor(err error) metrics.Outcome {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return metrics.OutcomeCanceled
	}
	return metrics.OutcomeError
}
