package domain

import (
	"time"
)

// PreferenceConstraints — нормализованный набор ограничений предпочтения,
// не зависящий от того, какой из блоков деталей был заполнен.
type PreferenceConstraints struct {
	Type  PreferenceType
	State string
	LGAs  []string
	// Areas — плоский список районов из всех пар (LGA, районы)
	Areas []string

	MinPrice *float64
	MaxPrice *float64

	MinBedrooms  *int
	MinBathrooms *int

	PropertyType      string
	BuildingType      string
	PropertyCondition string

	LandSizeMin *float64
	LandSizeMax *float64
	// DocumentTypes — требуемые документы (documentTypes для buy/rent, minimumTitleRequirements для JV)
	DocumentTypes []string

	Features []string

	// Shortlet — только для режима shortlet
	Shortlet *ShortletConstraints
}

// ShortletConstraints — ограничения посуточной аренды.
type ShortletConstraints struct {
	Guests   *int
	CheckIn  *time.Time
	CheckOut *time.Time
	// Pets / Smoking / Parties — требовать разрешение, только если покупатель явно попросил
	Pets    bool
	Smoking bool
	Parties bool
}

// CandidateFilter — жёсткие фильтры выборки кандидатов.
// Каждое ограничение опционально; флаги допуска (IsDeleted/IsRejected/IsApproved) применяются всегда.
type CandidateFilter struct {
	State string
	LGAs  []string
	Areas []string

	MinPrice *float64
	MaxPrice *float64

	MinBedrooms  *int
	MinBathrooms *int

	PropertyType      string
	BuildingType      string
	PropertyCondition string

	MinLandSize *float64
	MaxLandSize *float64
	// ProvidedDocuments — кандидат должен иметь хотя бы один из документов с isProvided=true
	ProvidedDocuments []string

	MinGuests *int
	// Available — интервал, в который у кандидата не должно быть пересекающихся броней
	Available *DateRange

	RequirePets    bool
	RequireSmoking bool
	RequireParties bool

	IsDeleted  bool
	IsRejected bool
	IsApproved bool

	BriefTypes []BriefType
}

// DateRange — полуоткрытый интервал [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// ScoreBreakdown — баллы по каждому критерию.
type ScoreBreakdown struct {
	Location     int
	Price        int
	Bedrooms     int
	Bathrooms    int
	PropertyType int
	Features     int
}

// Earned — сумма набранных баллов.
func (b ScoreBreakdown) Earned() int {
	return b.Location + b.Price + b.Bedrooms + b.Bathrooms + b.PropertyType + b.Features
}

// ScoredCandidate — кандидат с рассчитанным score.
type ScoredCandidate struct {
	Property  Property
	Score     int
	Breakdown ScoreBreakdown
}

// MatchResult — результат матчинга для выдачи. Не сохраняется и не кэшируется.
type MatchResult struct {
	Property   Property
	MatchScore int
	IsPriority bool
}
