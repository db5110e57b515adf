package httpapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"preference_match/internal/config"
	"preference_match/internal/domain"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type stubMatchService struct{}

func (stubMatchService) MatchPreference(context.Context, uuid.UUID, domain.PageRequest) (domain.Page[domain.MatchResult], error) {
	return domain.Page[domain.MatchResult]{Items: []domain.MatchResult{}}, nil
}

func newTestHandler() http.Handler {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter", Help: "test"}))

	return NewRouter(log, stubMatchService{}, reg,
		config.HTTPConfig{AllowedOrigins: []string{"https://admin.example.com"}},
		config.MatchingConfig{DefaultLimit: 20, MaxLimit: 100},
	)
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_counter")
}

func TestRouter_MatchRouteAndCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/preferences/"+uuid.NewString()+"/matches", nil)
	req.Header.Set("Origin", "https://admin.example.com")

	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
