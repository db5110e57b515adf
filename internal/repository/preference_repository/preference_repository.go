package preference_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"preference_match/internal/domain"
	"preference_match/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewPreferenceRepository(db *pgxpool.Pool, log *slog.Logger) *PreferenceRepository {
	return &PreferenceRepository{db: db, log: log}
}

// GetByID — получает предпочтение по ID.
func (r *PreferenceRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Preference, error) {
	const op = "PreferenceRepository.GetByID"

	query := `
		SELECT
			preference_id, preference_type,
			state, local_government_areas, lgas_with_areas, custom_location,
			min_price, max_price, currency,
			property_details, development_details, booking_details,
			base_features, created_at
		FROM preferences
		WHERE preference_id = $1
	`

	var p domain.Preference
	var prefType string
	var lgasWithAreas, propertyDetails, developmentDetails, bookingDetails []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&prefType,
		&p.Location.State,
		&p.Location.LocalGovernmentAreas,
		&lgasWithAreas,
		&p.Location.CustomLocation,
		&p.Budget.MinPrice,
		&p.Budget.MaxPrice,
		&p.Budget.Currency,
		&propertyDetails,
		&developmentDetails,
		&bookingDetails,
		&p.Features.BaseFeatures,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Preference{}, repository.ErrPreferenceNotFound
		}
		return domain.Preference{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Type = domain.PreferenceType(prefType)

	if len(lgasWithAreas) > 0 {
		if err := json.Unmarshal(lgasWithAreas, &p.Location.LGAsWithAreas); err != nil {
			return domain.Preference{}, fmt.Errorf("%s: decode lgas_with_areas: %w", op, err)
		}
	}

	// Читаем только блок, соответствующий типу; остальные колонки игнорируются
	var raw []byte
	switch p.Type {
	case domain.PreferenceTypeBuy, domain.PreferenceTypeRent:
		raw = propertyDetails
	case domain.PreferenceTypeJointVenture:
		raw = developmentDetails
	case domain.PreferenceTypeShortlet:
		raw = bookingDetails
	default:
		r.log.Warn("unknown preference type",
			slog.String("op", op),
			slog.String("preference_id", id.String()),
			slog.String("type", prefType),
		)
	}

	details, err := decodeDetails(p.Type, raw)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("%s: %w", op, err)
	}
	p.Details = details

	return p, nil
}

// decodeDetails разбирает JSON-блок деталей в конкретный тип по режиму предпочтения.
// Пустой блок и неизвестный тип дают nil без ошибки.
func decodeDetails(t domain.PreferenceType, raw []byte) (domain.PreferenceDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	details, err := domain.NewDetailsFor(t)
	if err != nil {
		return nil, nil
	}

	if err := json.Unmarshal(raw, details); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", t, err)
	}
	return details, nil
}
