package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PreferenceType — режим предпочтения покупателя.
type PreferenceType string

const (
	PreferenceTypeBuy          PreferenceType = "buy"
	PreferenceTypeRent         PreferenceType = "rent"
	PreferenceTypeJointVenture PreferenceType = "joint-venture"
	PreferenceTypeShortlet     PreferenceType = "shortlet"
)

func (t PreferenceType) String() string {
	return string(t)
}

// IsValid проверяет, что тип входит в известный набор.
func (t PreferenceType) IsValid() bool {
	switch t {
	case PreferenceTypeBuy, PreferenceTypeRent, PreferenceTypeJointVenture, PreferenceTypeShortlet:
		return true
	default:
		return false
	}
}

// Preference — структурированный запрос покупателя.
// Details — tagged union: конкретный тип блока определяется полем Type.
type Preference struct {
	ID        uuid.UUID
	Type      PreferenceType
	Location  PreferenceLocation
	Budget    Budget
	Details   PreferenceDetails
	Features  PreferenceFeatures
	CreatedAt time.Time
}

// PreferenceLocation — желаемая локация.
type PreferenceLocation struct {
	// State — штат, обязателен для поиска кандидатов
	State string `json:"state"`
	// LocalGovernmentAreas — список LGA
	LocalGovernmentAreas []string `json:"localGovernmentAreas,omitempty"`
	// LGAsWithAreas — пары (LGA, районы)
	LGAsWithAreas  []LGAAreas `json:"lgasWithAreas,omitempty"`
	CustomLocation string     `json:"customLocation,omitempty"`
}

type LGAAreas struct {
	LGAName string   `json:"lgaName"`
	Areas   []string `json:"areas"`
}

// Budget — ценовой диапазон. Любая из границ может отсутствовать.
type Budget struct {
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type PreferenceFeatures struct {
	BaseFeatures []string `json:"baseFeatures,omitempty"`
}

// PreferenceDetails — закрытый интерфейс блока деталей предпочтения.
type PreferenceDetails interface {
	preferenceDetails()
}

// PropertyDetails — детали для режимов buy и rent.
type PropertyDetails struct {
	PropertyType      string        `json:"propertyType,omitempty"`
	BuildingType      string        `json:"buildingType,omitempty"`
	MinBedrooms       NumericString `json:"minBedrooms,omitempty"`
	MinBathrooms      NumericString `json:"minBathrooms,omitempty"`
	PropertyCondition string        `json:"propertyCondition,omitempty"`
	MinLandSize       NumericString `json:"minLandSize,omitempty"`
	MaxLandSize       NumericString `json:"maxLandSize,omitempty"`
	DocumentTypes     []string      `json:"documentTypes,omitempty"`
}

// DevelopmentDetails — детали для режима joint-venture.
type DevelopmentDetails struct {
	PropertyType             string        `json:"propertyType,omitempty"`
	BuildingType             string        `json:"buildingType,omitempty"`
	MinBedrooms              NumericString `json:"minBedrooms,omitempty"`
	MinBathrooms             NumericString `json:"minBathrooms,omitempty"`
	PropertyCondition        string        `json:"propertyCondition,omitempty"`
	MinLandSize              NumericString `json:"minLandSize,omitempty"`
	MaxLandSize              NumericString `json:"maxLandSize,omitempty"`
	MinimumTitleRequirements []string      `json:"minimumTitleRequirements,omitempty"`
}

// BookingDetails — детали для режима shortlet.
type BookingDetails struct {
	PropertyType      string        `json:"propertyType,omitempty"`
	BuildingType      string        `json:"buildingType,omitempty"`
	MinBedrooms       NumericString `json:"minBedrooms,omitempty"`
	MinBathrooms      NumericString `json:"minBathrooms,omitempty"`
	PropertyCondition string        `json:"propertyCondition,omitempty"`
	NumberOfGuests    NumericString `json:"numberOfGuests,omitempty"`
	CheckInDate       *time.Time    `json:"checkInDate,omitempty"`
	CheckOutDate      *time.Time    `json:"checkOutDate,omitempty"`
	PetsAllowed       bool          `json:"petsAllowed,omitempty"`
	SmokingAllowed    bool          `json:"smokingAllowed,omitempty"`
	PartiesAllowed    bool          `json:"partiesAllowed,omitempty"`
}

func (*PropertyDetails) preferenceDetails()    {}
func (*DevelopmentDetails) preferenceDetails() {}
func (*BookingDetails) preferenceDetails()     {}

// NewDetailsFor возвращает пустой блок деталей, соответствующий типу предпочтения.
func NewDetailsFor(t PreferenceType) (PreferenceDetails, error) {
	switch t {
	case PreferenceTypeBuy, PreferenceTypeRent:
		return &PropertyDetails{}, nil
	case PreferenceTypeJointVenture:
		return &DevelopmentDetails{}, nil
	case PreferenceTypeShortlet:
		return &BookingDetails{}, nil
	default:
		return nil, fmt.Errorf("unknown preference type %q", t)
	}
}

// Validate проверяет согласованность типа и блока деталей.
// Отсутствующий блок допустим: предпочтение без деталей ограничивает только локацию и бюджет.
func (p Preference) Validate() error {
	if !p.Type.IsValid() {
		return fmt.Errorf("unknown preference type %q", p.Type)
	}
	if p.Details == nil {
		return nil
	}

	ok := false
	switch p.Details.(type) {
	case *PropertyDetails:
		ok = p.Type == PreferenceTypeBuy || p.Type == PreferenceTypeRent
	case *DevelopmentDetails:
		ok = p.Type == PreferenceTypeJointVenture
	case *BookingDetails:
		ok = p.Type == PreferenceTypeShortlet
	}
	if !ok {
		return fmt.Errorf("details block %T does not match preference type %q", p.Details, p.Type)
	}
	return nil
}
