package matching

import (
	"preference_match/internal/domain"
)

// BuildCandidateFilter превращает набор ограничений в жёсткий фильтр выборки кандидатов.
// Фильтр только сужает пул перед скорингом и сам по себе score не определяет.
func BuildCandidateFilter(c domain.PreferenceConstraints) domain.CandidateFilter {
	f := domain.CandidateFilter{
		State: c.State,
		LGAs:  c.LGAs,
		Areas: c.Areas,

		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,

		MinBedrooms:  c.MinBedrooms,
		MinBathrooms: c.MinBathrooms,

		PropertyType:      c.PropertyType,
		BuildingType:      c.BuildingType,
		PropertyCondition: c.PropertyCondition,

		MinLandSize:       c.LandSizeMin,
		MaxLandSize:       c.LandSizeMax,
		ProvidedDocuments: c.DocumentTypes,

		// Допуск к выдаче: не удалено, не отклонено, одобрено модерацией
		IsDeleted:  false,
		IsRejected: false,
		IsApproved: true,

		BriefTypes: domain.MatchableBriefTypes(),
	}

	if s := c.Shortlet; s != nil {
		f.MinGuests = s.Guests
		// Некорректное окно (одна из дат отсутствует или выезд не позже заезда) игнорируем
		if s.CheckIn != nil && s.CheckOut != nil && s.CheckOut.After(*s.CheckIn) {
			f.Available = &domain.DateRange{From: *s.CheckIn, To: *s.CheckOut}
		}
		f.RequirePets = s.Pets
		f.RequireSmoking = s.Smoking
		f.RequireParties = s.Parties
	}

	return f
}
