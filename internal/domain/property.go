package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property — доменная сущность объявления (read model, только чтение).
type Property struct {
	ID                uuid.UUID
	Owner             PropertyOwner
	BriefType         BriefType
	PropertyType      string
	TypeOfBuilding    string
	PropertyCondition string
	Location          PropertyLocation
	Price             float64
	LandSize          LandSize
	Documents         []PropertyDocument
	Features          []string
	Bedrooms          int
	Bathrooms         int
	Toilets           int
	CarParks          int
	Pictures          []string
	Videos            []string
	// Shortlet — заполняется только для объявлений типа Shortlet
	Shortlet    *ShortletDetails
	IsDeleted   bool
	IsRejected  bool
	IsApproved  bool
	IsAvailable bool
	Status      PropertyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyOwner — краткая информация о владельце объявления.
type PropertyOwner struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	UserType  string
}

type PropertyLocation struct {
	State           string
	LocalGovernment string
	Area            string
}

type LandSize struct {
	Size            *float64
	MeasurementType string
}

// PropertyDocument — документ на объект; IsProvided=false означает, что документ лишь заявлен.
type PropertyDocument struct {
	DocName    string `json:"docName"`
	IsProvided bool   `json:"isProvided"`
}

// ShortletDetails — параметры посуточной аренды.
// Занятость по датам в read model не загружается: она проверяется в запросе кандидатов.
type ShortletDetails struct {
	MaxGuests      int
	PetsAllowed    bool
	SmokingAllowed bool
	PartiesAllowed bool
}

// BriefType — тип объявления.
type BriefType string

const (
	BriefTypeOutrightSales BriefType = "Outright Sales"
	BriefTypeJointVenture  BriefType = "Joint Venture"
	BriefTypeRent          BriefType = "Rent"
	BriefTypeShortlet      BriefType = "Shortlet"
)

func (t BriefType) String() string {
	return string(t)
}

// MatchableBriefTypes — типы объявлений, которые конвертируются в тип предпочтения.
func MatchableBriefTypes() []BriefType {
	return []BriefType{
		BriefTypeOutrightSales,
		BriefTypeJointVenture,
		BriefTypeRent,
		BriefTypeShortlet,
	}
}

// PropertyStatus — статус объявления.
type PropertyStatus string

const (
	PropertyStatusUnspecified PropertyStatus = ""
	PropertyStatusActive      PropertyStatus = "active"
	PropertyStatusPending     PropertyStatus = "pending"
	PropertyStatusSold        PropertyStatus = "sold"
	PropertyStatusRented      PropertyStatus = "rented"
)

func (s PropertyStatus) String() string {
	return string(s)
}
