package metrics

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetric(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) *dto.Metric {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if hasLabels(m, labels) {
				return m
			}
		}
	}
	return nil
}

func hasLabels(m *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, lp := range m.GetLabel() {
		if v, ok := labels[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}
	return matched == len(labels)
}

func TestMatchMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMatchMetrics(slog.New(slog.NewTextHandler(os.Stdout, nil)), reg)

	m.RecordRequest("buy", OutcomeOK)
	m.RecordRequest("buy", OutcomeOK)
	m.RecordRequest("", OutcomeNotFound)

	ok := findMetric(t, reg, "preference_match_matching_requests_total", map[string]string{"preference_type": "buy", "outcome": "ok"})
	require.NotNil(t, ok)
	assert.Equal(t, 2.0, ok.GetCounter().GetValue())

	notFound := findMetric(t, reg, "preference_match_matching_requests_total", map[string]string{"preference_type": "unknown", "outcome": "not_found"})
	require.NotNil(t, notFound)
	assert.Equal(t, 1.0, notFound.GetCounter().GetValue())
}

func TestMatchMetrics_StageTimer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMatchMetrics(slog.New(slog.NewTextHandler(os.Stdout, nil)), reg)

	m.StartTimer(StageScoring).Stop(nil)
	m.StartTimer(StageCandidates).Stop(errors.New("boom"))

	scoring := findMetric(t, reg, "preference_match_matching_stage_duration_seconds", map[string]string{"stage": "scoring"})
	require.NotNil(t, scoring)
	assert.Equal(t, uint64(1), scoring.GetHistogram().GetSampleCount())

	failed := findMetric(t, reg, "preference_match_matching_stage_errors_total", map[string]string{"stage": "candidates"})
	require.NotNil(t, failed)
	assert.Equal(t, 1.0, failed.GetCounter().GetValue())

	assert.Nil(t, findMetric(t, reg, "preference_match_matching_stage_errors_total", map[string]string{"stage": "scoring"}))
}

func TestMatchMetrics_RecordPool(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMatchMetrics(nil, reg)

	m.RecordPool(40, 12)
	m.RecordStage(StageRanking, time.Millisecond, nil)

	pool := findMetric(t, reg, "preference_match_matching_candidate_pool_size", nil)
	require.NotNil(t, pool)
	assert.Equal(t, 40.0, pool.GetHistogram().GetSampleSum())

	results := findMetric(t, reg, "preference_match_matching_ranked_results_size", nil)
	require.NotNil(t, results)
	assert.Equal(t, 12.0, results.GetHistogram().GetSampleSum())
}

func TestMatchMetrics_NilSafe(t *testing.T) {
	var m *MatchMetrics

	assert.NotPanics(t, func() {
		m.StartTimer(StagePreference).Stop(nil)
		m.RecordRequest("buy", OutcomeOK)
		m.RecordPool(1, 1)
	})
}
