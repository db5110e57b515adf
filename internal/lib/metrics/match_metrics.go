package metrics

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage — этап конвейера матчинга.
type Stage string

const (
	StagePreference Stage = "preference"
	StageCandidates Stage = "candidates"
	StageScoring    Stage = "scoring"
	StageRanking    Stage = "ranking"
)

// Outcome — итог запроса на матчинг.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeInvalidPreference Outcome = "invalid_preference"
	OutcomeFetchError        Outcome = "fetch_error"
	OutcomeCanceled          Outcome = "canceled"
	OutcomeError             Outcome = "error"
)

// MatchMetrics — метрики конвейера матчинга (Prometheus).
// Методы безопасны для nil-получателя: в тестах метрики можно не передавать.
type MatchMetrics struct {
	log *slog.Logger

	requestsTotal *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	candidates    prometheus.Histogram
	results       prometheus.Histogram
}

// NewMatchMetrics регистрирует метрики в переданном registerer.
func NewMatchMetrics(log *slog.Logger, reg prometheus.Registerer) *MatchMetrics {
	f := promauto.With(reg)

	return &MatchMetrics{
		log: log,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "preference_match",
				Subsystem: "matching",
				Name:      "requests_total",
				Help:      "Total number of match requests by outcome",
			},
			[]string{"preference_type", "outcome"},
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "preference_match",
				Subsystem: "matching",
				Name:      "stage_duration_seconds",
				Help:      "Duration of matching pipeline stages in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"stage"},
		),
		stageErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "preference_match",
				Subsystem: "matching",
				Name:      "stage_errors_total",
				Help:      "Total number of failed matching pipeline stages",
			},
			[]string{"stage"},
		),
		candidates: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "preference_match",
				Subsystem: "matching",
				Name:      "candidate_pool_size",
				Help:      "Number of candidates returned by the hard filter",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		results: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "preference_match",
				Subsystem: "matching",
				Name:      "ranked_results_size",
				Help:      "Number of results left after the score threshold",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// StageTimer помогает измерять время этапа.
type StageTimer struct {
	metrics   *MatchMetrics
	stage     Stage
	startTime time.Time
}

// StartTimer начинает измерение времени этапа.
func (m *MatchMetrics) StartTimer(stage Stage) *StageTimer {
	return &StageTimer{
		metrics:   m,
		stage:     stage,
		startTime: time.Now(),
	}
}

// Stop останавливает таймер и записывает метрики.
func (t *StageTimer) Stop(err error) {
	if t == nil || t.metrics == nil {
		return
	}
	t.metrics.RecordStage(t.stage, time.Since(t.startTime), err)
}

// RecordStage записывает длительность этапа.
func (m *MatchMetrics) RecordStage(stage Stage, latency time.Duration, err error) {
	if m == nil {
		return
	}

	m.stageDuration.WithLabelValues(string(stage)).Observe(latency.Seconds())
	if err != nil {
		m.stageErrors.WithLabelValues(string(stage)).Inc()
	}

	if m.log != nil {
		attrs := []any{
			slog.String("stage", string(stage)),
			slog.Int64("latency_ms", latency.Milliseconds()),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			m.log.Warn("matching stage failed", attrs...)
		} else {
			m.log.Debug("matching stage completed", attrs...)
		}
	}
}

// RecordRequest записывает итог запроса.
func (m *MatchMetrics) RecordRequest(preferenceType string, outcome Outcome) {
	if m == nil {
		return
	}
	if preferenceType == "" {
		preferenceType = "unknown"
	}
	m.requestsTotal.WithLabelValues(preferenceType, string(outcome)).Inc()
}

// RecordPool записывает размер пула кандидатов и число результатов после порога.
func (m *MatchMetrics) RecordPool(candidates, results int) {
	if m == nil {
		return
	}
	m.candidates.Observe(float64(candidates))
	m.results.Observe(float64(results))
}
