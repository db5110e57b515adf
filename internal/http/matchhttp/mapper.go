package matchhttp

import (
	"time"

	"preference_match/internal/domain"

	"github.com/samber/lo"
)

type matchResponse struct {
	Success    bool             `json:"success"`
	Data       []matchResultDTO `json:"data"`
	Pagination paginationDTO    `json:"pagination"`
}

type paginationDTO struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

// matchResultDTO — плоская проекция объявления плюс оценка соответствия.
type matchResultDTO struct {
	ID                string        `json:"id"`
	Owner             ownerDTO      `json:"owner"`
	BriefType         string        `json:"briefType"`
	PropertyType      string        `json:"propertyType"`
	TypeOfBuilding    string        `json:"typeOfBuilding,omitempty"`
	PropertyCondition string        `json:"propertyCondition,omitempty"`
	Location          locationDTO   `json:"location"`
	Price             float64       `json:"price"`
	LandSize          landSizeDTO   `json:"landSize"`
	Documents         []documentDTO `json:"documents"`
	Features          []string      `json:"features"`
	Bedrooms          int           `json:"bedrooms"`
	Bathrooms         int           `json:"bathrooms"`
	Toilets           int           `json:"toilets"`
	CarParks          int           `json:"carParks"`
	Pictures          []string      `json:"pictures"`
	Videos            []string      `json:"videos"`
	IsApproved        bool          `json:"isApproved"`
	IsAvailable       bool          `json:"isAvailable"`
	Status            string        `json:"status"`
	CreatedAt         string        `json:"createdAt"`
	MatchScore        int           `json:"matchScore"`
	IsPriority        bool          `json:"isPriority"`
}

type ownerDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"userType,omitempty"`
}

type locationDTO struct {
	State           string `json:"state"`
	LocalGovernment string `json:"localGovernment,omitempty"`
	Area            string `json:"area,omitempty"`
}

type landSizeDTO struct {
	Size            *float64 `json:"size,omitempty"`
	MeasurementType string   `json:"measurementType,omitempty"`
}

type documentDTO struct {
	DocName    string `json:"docName"`
	IsProvided bool   `json:"isProvided"`
}

func matchPageToResponse(page domain.Page[domain.MatchResult]) matchResponse {
	return matchResponse{
		Success: true,
		Data:    lo.Map(page.Items, func(m domain.MatchResult, _ int) matchResultDTO { return matchResultToDTO(m) }),
		Pagination: paginationDTO{
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
		},
	}
}

func matchResultToDTO(m domain.MatchResult) matchResultDTO {
	p := m.Property
	return matchResultDTO{
		ID: p.ID.String(),
		Owner: ownerDTO{
			ID:        p.Owner.ID.String(),
			FirstName: p.Owner.FirstName,
			LastName:  p.Owner.LastName,
			Email:     p.Owner.Email,
			Phone:     p.Owner.Phone,
			UserType:  p.Owner.UserType,
		},
		BriefType:         p.BriefType.String(),
		PropertyType:      p.PropertyType,
		TypeOfBuilding:    p.TypeOfBuilding,
		PropertyCondition: p.PropertyCondition,
		Location: locationDTO{
			State:           p.Location.State,
			LocalGovernment: p.Location.LocalGovernment,
			Area:            p.Location.Area,
		},
		Price: p.Price,
		LandSize: landSizeDTO{
			Size:            p.LandSize.Size,
			MeasurementType: p.LandSize.MeasurementType,
		},
		Documents: lo.Map(p.Documents, func(d domain.PropertyDocument, _ int) documentDTO {
			return documentDTO{DocName: d.DocName, IsProvided: d.IsProvided}
		}),
		Features:    emptyIfNil(p.Features),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Toilets:     p.Toilets,
		CarParks:    p.CarParks,
		Pictures:    emptyIfNil(p.Pictures),
		Videos:      emptyIfNil(p.Videos),
		IsApproved:  p.IsApproved,
		IsAvailable: p.IsAvailable,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		MatchScore:  m.MatchScore,
		IsPriority:  m.IsPriority,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
