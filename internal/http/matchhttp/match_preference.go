package matchhttp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"preference_match/internal/domain"
	"preference_match/internal/lib/logger/sl"
	"preference_match/internal/services/matching"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// MatchPreference — GET /preferences/{id}/matches?page=&limit=
// Возвращает страницу ранжированных объявлений для предпочтения покупателя.
func (s *matchServer) MatchPreference(w http.ResponseWriter, r *http.Request) {
	const op = "matchhttp.MatchPreference"

	log := s.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Невалидный ID трактуется как отсутствующее предпочтение
	preferenceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "preference not found")
		return
	}

	req, err := s.parsePageRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.service.MatchPreference(r.Context(), preferenceID, req)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrPreferenceNotFound):
			writeError(w, http.StatusNotFound, "preference not found")
		case errors.Is(err, matching.ErrInvalidPreference):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("match preference timed out", sl.Err(err))
			writeError(w, http.StatusGatewayTimeout, "request timed out")
		default:
			log.Error("failed to match preference", sl.Err(err))
			writeError(w, http.StatusInternalServerError, "failed to match preference")
		}
		return
	}

	writeJSON(w, http.StatusOK, matchPageToResponse(page))
}

// parsePageRequest читает page и limit; отсутствующие параметры заменяются значениями по умолчанию.
func (s *matchServer) parsePageRequest(r *http.Request) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: domain.DefaultPage, Limit: s.defaultLimit}

	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("invalid page %q", v)
		}
		req.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return domain.PageRequest{}, fmt.Errorf("invalid limit %q", v)
		}
		req.Limit = limit
	}

	if err := s.validate.Struct(req); err != nil {
		return domain.PageRequest{}, fmt.Errorf("invalid pagination: %w", err)
	}
	if err := s.validate.Var(req.Limit, fmt.Sprintf("max=%d", s.maxLimit)); err != nil {
		return domain.PageRequest{}, fmt.Errorf("limit must not exceed %d", s.maxLimit)
	}

	return req, nil
}
