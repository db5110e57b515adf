package property_repository

import (
	"context"
	"fmt"
	"log/slog"

	"preference_match/internal/domain"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
)

type PropertyRepository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewPropertyRepository(db *pgxpool.Pool, log *slog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: log}
}

var candidateColumns = []string{
	"p.property_id", "p.owner_id",
	"COALESCE(u.first_name, '')", "COALESCE(u.last_name, '')", "COALESCE(u.email, '')",
	"COALESCE(u.phone, '')", "COALESCE(u.user_type, '')",
	"p.brief_type", "p.property_type", "p.type_of_building", "p.property_condition",
	"p.state", "p.local_government", "p.area",
	"p.price", "p.land_size", "p.land_size_unit",
	"p.documents", "p.features",
	"p.bedrooms", "p.bathrooms", "p.toilets", "p.car_parks",
	"p.pictures", "p.videos",
	"p.shortlet_max_guests", "p.pets_allowed", "p.smoking_allowed", "p.parties_allowed",
	"p.is_deleted", "p.is_rejected", "p.is_approved", "p.is_available",
	"p.status", "p.created_at", "p.updated_at",
}

// FetchCandidates возвращает все объявления, удовлетворяющие жёсткому фильтру, без пагинации:
// порядок выдачи определяется ранжированием уже после скоринга.
func (r *PropertyRepository) FetchCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Property, error) {
	const op = "PropertyRepository.FetchCandidates"

	query, args := buildCandidateQuery(filter)

	r.log.Debug("fetching candidates", slog.String("op", op), slog.Int("params", len(args)))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		var briefType, status string
		var maxGuests *int32
		var petsAllowed, smokingAllowed, partiesAllowed bool

		if err := rows.Scan(
			&p.ID,
			&p.Owner.ID,
			&p.Owner.FirstName,
			&p.Owner.LastName,
			&p.Owner.Email,
			&p.Owner.Phone,
			&p.Owner.UserType,
			&briefType,
			&p.PropertyType,
			&p.TypeOfBuilding,
			&p.PropertyCondition,
			&p.Location.State,
			&p.Location.LocalGovernment,
			&p.Location.Area,
			&p.Price,
			&p.LandSize.Size,
			&p.LandSize.MeasurementType,
			&p.Documents,
			&p.Features,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.Toilets,
			&p.CarParks,
			&p.Pictures,
			&p.Videos,
			&maxGuests,
			&petsAllowed,
			&smokingAllowed,
			&partiesAllowed,
			&p.IsDeleted,
			&p.IsRejected,
			&p.IsApproved,
			&p.IsAvailable,
			&status,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", op, err)
		}

		p.BriefType = domain.BriefType(briefType)
		p.Status = domain.PropertyStatus(status)

		if p.BriefType == domain.BriefTypeShortlet || maxGuests != nil {
			p.Shortlet = &domain.ShortletDetails{
				MaxGuests:      int(lo.FromPtr(maxGuests)),
				PetsAllowed:    petsAllowed,
				SmokingAllowed: smokingAllowed,
				PartiesAllowed: partiesAllowed,
			}
		}

		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	r.log.Debug("candidates fetched", slog.String("op", op), slog.Int("count", len(properties)))

	return properties, nil
}

// buildCandidateQuery собирает SELECT по фильтру. Каждое ограничение добавляется,
// только если оно задано; флаги допуска и типы объявлений применяются всегда.
func buildCandidateQuery(f domain.CandidateFilter) (string, []interface{}) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(candidateColumns...)
	sb.From("properties p")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.user_id = p.owner_id")

	where := []string{
		sb.Equal("p.is_deleted", f.IsDeleted),
		sb.Equal("p.is_rejected", f.IsRejected),
		sb.Equal("p.is_approved", f.IsApproved),
	}

	if len(f.BriefTypes) > 0 {
		where = append(where, sb.In("p.brief_type", lo.ToAnySlice(lo.Map(f.BriefTypes, func(t domain.BriefType, _ int) string {
			return t.String()
		}))...))
	}

	// ===== ЛОКАЦИЯ =====
	if f.State != "" {
		where = append(where, sb.Equal("p.state", f.State))
	}
	if len(f.LGAs) > 0 {
		where = append(where, sb.In("p.local_government", lo.ToAnySlice(f.LGAs)...))
	}
	if len(f.Areas) > 0 {
		where = append(where, sb.In("p.area", lo.ToAnySlice(f.Areas)...))
	}

	// ===== ЦЕНА =====
	if f.MinPrice != nil {
		where = append(where, sb.GreaterEqualThan("p.price", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, sb.LessEqualThan("p.price", *f.MaxPrice))
	}

	// ===== ХАРАКТЕРИСТИКИ =====
	if f.MinBedrooms != nil {
		where = append(where, sb.GreaterEqualThan("p.bedrooms", *f.MinBedrooms))
	}
	if f.MinBathrooms != nil {
		where = append(where, sb.GreaterEqualThan("p.bathrooms", *f.MinBathrooms))
	}
	if f.PropertyType != "" {
		where = append(where, sb.Equal("p.property_type", f.PropertyType))
	}
	if f.BuildingType != "" {
		where = append(where, sb.Equal("p.type_of_building", f.BuildingType))
	}
	if f.PropertyCondition != "" {
		where = append(where, sb.Equal("p.property_condition", f.PropertyCondition))
	}

	// ===== ЗЕМЛЯ И ДОКУМЕНТЫ =====
	if f.MinLandSize != nil {
		where = append(where, sb.GreaterEqualThan("p.land_size", *f.MinLandSize))
	}
	if f.MaxLandSize != nil {
		where = append(where, sb.LessEqualThan("p.land_size", *f.MaxLandSize))
	}
	if len(f.ProvidedDocuments) > 0 {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(p.documents) AS d WHERE d->>'docName' = ANY(%s) AND COALESCE((d->>'isProvided')::boolean, false))",
			sb.Var(f.ProvidedDocuments),
		))
	}

	// ===== SHORTLET =====
	if f.MinGuests != nil {
		where = append(where, sb.GreaterEqualThan("p.shortlet_max_guests", *f.MinGuests))
	}
	if f.Available != nil {
		// Бронь не мешает, только если она закончилась до заезда или началась после выезда
		where = append(where, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM property_bookings b WHERE b.property_id = p.property_id AND NOT (b.check_out <= %s OR b.check_in >= %s))",
			sb.Var(f.Available.From),
			sb.Var(f.Available.To),
		))
	}
	if f.RequirePets {
		where = append(where, sb.Equal("p.pets_allowed", true))
	}
	if f.RequireSmoking {
		where = append(where, sb.Equal("p.smoking_allowed", true))
	}
	if f.RequireParties {
		where = append(where, sb.Equal("p.parties_allowed", true))
	}

	sb.Where(where...)
	sb.OrderBy("p.created_at DESC", "p.property_id ASC")

	return sb.Build()
}
