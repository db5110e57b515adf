package preference_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"preference_match/internal/domain"
	"preference_match/internal/lib/logger/sl"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "preference_match:preference:"

// Getter — источник записей предпочтений за кэшем.
type Getter interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Preference, error)
}

// CachedRepository — read-through кэш записей предпочтений в Redis.
// Недоступность Redis не ломает запрос: чтение уходит в основной источник.
type CachedRepository struct {
	next Getter
	rdb  *redis.Client
	ttl  time.Duration
	log  *slog.Logger
}

func NewCachedRepository(next Getter, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *CachedRepository {
	return &CachedRepository{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (r *CachedRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Preference, error) {
	const op = "CachedRepository.GetByID"

	log := r.log.With(
		slog.String("op", op),
		slog.String("preference_id", id.String()),
	)

	key := cacheKeyPrefix + id.String()

	data, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		p, decodeErr := fromCached(data)
		if decodeErr == nil {
			log.Debug("preference cache hit")
			return p, nil
		}
		log.Warn("failed to decode cached preference", sl.Err(decodeErr))
	case errors.Is(err, redis.Nil):
		log.Debug("preference cache miss")
	default:
		log.Warn("preference cache unavailable", sl.Err(err))
	}

	p, err := r.next.GetByID(ctx, id)
	if err != nil {
		return domain.Preference{}, err
	}

	encoded, err := toCached(p)
	if err != nil {
		log.Warn("failed to encode preference for cache", sl.Err(err))
		return p, nil
	}
	if err := r.rdb.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		log.Warn("failed to store preference in cache", sl.Err(err))
	}

	return p, nil
}

// cachedPreference — сериализуемое представление предпочтения.
// Блок деталей хранится как сырой JSON и разбирается по типу при чтении.
type cachedPreference struct {
	ID        uuid.UUID                 `json:"id"`
	Type      domain.PreferenceType     `json:"type"`
	Location  domain.PreferenceLocation `json:"location"`
	Budget    domain.Budget             `json:"budget"`
	Details   json.RawMessage           `json:"details,omitempty"`
	Features  domain.PreferenceFeatures `json:"features"`
	CreatedAt time.Time                 `json:"createdAt"`
}

func toCached(p domain.Preference) ([]byte, error) {
	c := cachedPreference{
		ID:        p.ID,
		Type:      p.Type,
		Location:  p.Location,
		Budget:    p.Budget,
		Features:  p.Features,
		CreatedAt: p.CreatedAt,
	}
	if p.Details != nil {
		raw, err := json.Marshal(p.Details)
		if err != nil {
			return nil, fmt.Errorf("encode details: %w", err)
		}
		c.Details = raw
	}
	return json.Marshal(c)
}

func fromCached(data []byte) (domain.Preference, error) {
	var c cachedPreference
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Preference{}, err
	}

	details, err := decodeDetails(c.Type, c.Details)
	if err != nil {
		return domain.Preference{}, err
	}

	return domain.Preference{
		ID:        c.ID,
		Type:      c.Type,
		Location:  c.Location,
		Budget:    c.Budget,
		Details:   details,
		Features:  c.Features,
		CreatedAt: c.CreatedAt,
	}, nil
}
