package matching

import (
	"math"

	"preference_match/internal/domain"

	"github.com/samber/lo"
)

// Веса критериев. Сумма всегда равна MaxPossiblePoints: каждый критерий входит в знаменатель
// полным весом, даже если предпочтение его не задаёт.
const (
	WeightLocation     = 30
	WeightPrice        = 25
	WeightBedrooms     = 15
	WeightBathrooms    = 10
	WeightPropertyType = 10
	WeightFeatures     = 10

	MaxPossiblePoints = WeightLocation + WeightPrice + WeightBedrooms + WeightBathrooms + WeightPropertyType + WeightFeatures
)

// Составляющие критерия локации.
const (
	LocationStatePoints = 15
	LocationLGAPoints   = 10
	LocationAreaPoints  = 5
)

// Частичные баллы за нехватку ровно одной комнаты.
const (
	BedroomsOneShortPoints  = 10
	BathroomsOneShortPoints = 5
)

// PriceTolerance — ширина полосы допуска по цене как доля от нарушенной границы бюджета.
const PriceTolerance = 0.20

// ScoreCandidate рассчитывает score 0..100 для одного кандидата.
// Функция чистая и не учитывает жёсткий фильтр выборки.
func ScoreCandidate(c domain.PreferenceConstraints, p domain.Property) domain.ScoredCandidate {
	b := domain.ScoreBreakdown{
		Location:     locationScore(c, p.Location),
		Price:        priceScore(p.Price, c.MinPrice, c.MaxPrice),
		Bedrooms:     roomsScore(p.Bedrooms, c.MinBedrooms, WeightBedrooms, BedroomsOneShortPoints),
		Bathrooms:    roomsScore(p.Bathrooms, c.MinBathrooms, WeightBathrooms, BathroomsOneShortPoints),
		PropertyType: propertyTypeScore(c.PropertyType, p.PropertyType),
		Features:     featuresScore(c.Features, p.Features),
	}

	score := int(math.Round(100 * float64(b.Earned()) / float64(MaxPossiblePoints)))
	score = min(max(score, 0), 100)

	return domain.ScoredCandidate{
		Property:  p,
		Score:     score,
		Breakdown: b,
	}
}

// locationScore: 15 за штат; LGA и район дают баллы только при совпавшем штате.
func locationScore(c domain.PreferenceConstraints, loc domain.PropertyLocation) int {
	if c.State == "" || loc.State != c.State {
		return 0
	}
	points := LocationStatePoints
	if len(c.LGAs) == 0 || lo.Contains(c.LGAs, loc.LocalGovernment) {
		points += LocationLGAPoints
	}
	if len(c.Areas) == 0 || lo.Contains(c.Areas, loc.Area) {
		points += LocationAreaPoints
	}
	return points
}

func priceScore(price float64, minPrice, maxPrice *float64) int {
	if minPrice != nil && price < *minPrice {
		return partialPriceScore(*minPrice-price, *minPrice)
	}
	if maxPrice != nil && price > *maxPrice {
		return partialPriceScore(price-*maxPrice, *maxPrice)
	}
	return WeightPrice
}

// partialPriceScore линейно уменьшает баллы внутри полосы допуска (20% от границы).
func partialPriceScore(overshoot, bound float64) int {
	tolerance := bound * PriceTolerance
	if tolerance <= 0 {
		return 0
	}
	credit := float64(WeightPrice) * (1 - overshoot/tolerance)
	if credit <= 0 {
		return 0
	}
	return int(math.Round(credit))
}

func roomsScore(have int, required *int, full, oneShort int) int {
	if required == nil || have >= *required {
		return full
	}
	if have == *required-1 {
		return oneShort
	}
	return 0
}

func propertyTypeScore(wanted, actual string) int {
	if wanted == "" || wanted == actual {
		return WeightPropertyType
	}
	return 0
}

func featuresScore(preferred, actual []string) int {
	if len(preferred) == 0 {
		return WeightFeatures
	}
	overlap := lo.CountBy(preferred, func(f string) bool {
		return lo.Contains(actual, f)
	})
	return int(math.Round(float64(WeightFeatures) * float64(overlap) / float64(len(preferred))))
}
