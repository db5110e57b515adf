package matching

import (
	"fmt"
	"strings"

	"preference_match/internal/domain"

	"github.com/samber/lo"
)

// NormalizePreference разворачивает блок деталей предпочтения (по типу) в единый набор ограничений.
// Это единственное место, где разбирается tagged union Preference.Details.
func NormalizePreference(p domain.Preference) (domain.PreferenceConstraints, error) {
	const op = "matching.NormalizePreference"

	if strings.TrimSpace(p.Location.State) == "" {
		return domain.PreferenceConstraints{}, fmt.Errorf("%s: %w: location.state is required", op, ErrInvalidPreference)
	}
	if err := p.Validate(); err != nil {
		return domain.PreferenceConstraints{}, fmt.Errorf("%s: %w: %v", op, ErrInvalidPreference, err)
	}

	c := domain.PreferenceConstraints{
		Type:  p.Type,
		State: p.Location.State,
		LGAs:  lo.Uniq(lo.Compact(p.Location.LocalGovernmentAreas)),
		Areas: lo.Uniq(lo.Compact(lo.FlatMap(p.Location.LGAsWithAreas, func(la domain.LGAAreas, _ int) []string {
			return la.Areas
		}))),
		MinPrice: p.Budget.MinPrice,
		MaxPrice: p.Budget.MaxPrice,
		Features: lo.Uniq(lo.Compact(p.Features.BaseFeatures)),
	}

	switch d := p.Details.(type) {
	case *domain.PropertyDetails:
		c.PropertyType = d.PropertyType
		c.BuildingType = d.BuildingType
		c.PropertyCondition = d.PropertyCondition
		c.MinBedrooms = d.MinBedrooms.IntPtr()
		c.MinBathrooms = d.MinBathrooms.IntPtr()
		c.LandSizeMin = d.MinLandSize.FloatPtr()
		c.LandSizeMax = d.MaxLandSize.FloatPtr()
		c.DocumentTypes = lo.Uniq(lo.Compact(d.DocumentTypes))
	case *domain.DevelopmentDetails:
		c.PropertyType = d.PropertyType
		c.BuildingType = d.BuildingType
		c.PropertyCondition = d.PropertyCondition
		c.MinBedrooms = d.MinBedrooms.IntPtr()
		c.MinBathrooms = d.MinBathrooms.IntPtr()
		c.LandSizeMin = d.MinLandSize.FloatPtr()
		c.LandSizeMax = d.MaxLandSize.FloatPtr()
		c.DocumentTypes = lo.Uniq(lo.Compact(d.MinimumTitleRequirements))
	case *domain.BookingDetails:
		c.PropertyType = d.PropertyType
		c.BuildingType = d.BuildingType
		c.PropertyCondition = d.PropertyCondition
		c.MinBedrooms = d.MinBedrooms.IntPtr()
		c.MinBathrooms = d.MinBathrooms.IntPtr()
		c.Shortlet = &domain.ShortletConstraints{
			Guests:   d.NumberOfGuests.IntPtr(),
			CheckIn:  d.CheckInDate,
			CheckOut: d.CheckOutDate,
			Pets:     d.PetsAllowed,
			Smoking:  d.SmokingAllowed,
			Parties:  d.PartiesAllowed,
		}
	}

	return c, nil
}
