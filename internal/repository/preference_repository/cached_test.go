package preference_repository

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"preference_match/internal/domain"
	"preference_match/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockGetter — источник предпочтений для тестов кэша
type MockGetter struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Preference, error)
	calls       int
}

func (m *MockGetter) GetByID(ctx context.Context, id uuid.UUID) (domain.Preference, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return domain.Preference{}, nil
}

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCachedPreference_RoundTrip(t *testing.T) {
	checkIn := time.Date(2027, time.January, 5, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, time.January, 8, 11, 0, 0, 0, time.UTC)

	pref := domain.Preference{
		ID:   uuid.New(),
		Type: domain.PreferenceTypeShortlet,
		Location: domain.PreferenceLocation{
			State:         "Lagos",
			LGAsWithAreas: []domain.LGAAreas{{LGAName: "Eti-Osa", Areas: []string{"Lekki"}}},
		},
		Budget: domain.Budget{MaxPrice: ptr(100_000.0), Currency: "NGN"},
		Details: &domain.BookingDetails{
			NumberOfGuests: "3",
			CheckInDate:    &checkIn,
			CheckOutDate:   &checkOut,
			PetsAllowed:    true,
		},
		Features:  domain.PreferenceFeatures{BaseFeatures: []string{"Wifi"}},
		CreatedAt: time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC),
	}

	data, err := toCached(pref)
	require.NoError(t, err)

	got, err := fromCached(data)
	require.NoError(t, err)

	assert.Equal(t, pref.ID, got.ID)
	assert.Equal(t, pref.Location, got.Location)
	assert.Equal(t, pref.Budget, got.Budget)
	assert.True(t, pref.CreatedAt.Equal(got.CreatedAt))

	details, ok := got.Details.(*domain.BookingDetails)
	require.True(t, ok, "details decoded into %T", got.Details)
	assert.Equal(t, domain.NumericString("3"), details.NumberOfGuests)
	assert.True(t, details.CheckInDate.Equal(checkIn))
	assert.True(t, details.PetsAllowed)
}

func TestCachedRepository_FallsBackWhenRedisIsDown(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	id := uuid.New()

	next := &MockGetter{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (domain.Preference, error) {
			return domain.Preference{ID: got, Type: domain.PreferenceTypeBuy, Location: domain.PreferenceLocation{State: "Lagos"}}, nil
		},
	}

	rdb := unreachableRedis()
	defer rdb.Close()

	repo := NewCachedRepository(next, rdb, time.Minute, log)

	pref, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, pref.ID)
	assert.Equal(t, 1, next.calls)
}

func TestCachedRepository_PropagatesNotFound(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	next := &MockGetter{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Preference, error) {
			return domain.Preference{}, repository.ErrPreferenceNotFound
		},
	}

	rdb := unreachableRedis()
	defer rdb.Close()

	repo := NewCachedRepository(next, rdb, time.Minute, log)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrPreferenceNotFound))
}

func ptr[T any](v T) *T {
	return &v
}
