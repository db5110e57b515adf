package matching

import (
	"testing"
	"time"

	"preference_match/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildCandidateFilter_AlwaysAppliesAdmission(t *testing.T) {
	f := BuildCandidateFilter(domain.PreferenceConstraints{State: "Lagos"})

	assert.Equal(t, "Lagos", f.State)
	assert.False(t, f.IsDeleted)
	assert.False(t, f.IsRejected)
	assert.True(t, f.IsApproved)
	assert.ElementsMatch(t, domain.MatchableBriefTypes(), f.BriefTypes)

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinBedrooms)
	assert.Nil(t, f.MinGuests)
	assert.Nil(t, f.Available)
	assert.Empty(t, f.LGAs)
	assert.Empty(t, f.ProvidedDocuments)
}

func TestBuildCandidateFilter_CopiesConstraints(t *testing.T) {
	c := lagosBuyConstraints()
	c.LGAs = []string{"Ikeja"}
	c.Areas = []string{"GRA"}
	c.BuildingType = "Detached Duplex"
	c.PropertyCondition = "New"
	c.LandSizeMin = ptr(300.0)
	c.DocumentTypes = []string{"C of O"}

	f := BuildCandidateFilter(c)

	assert.Equal(t, []string{"Ikeja"}, f.LGAs)
	assert.Equal(t, []string{"GRA"}, f.Areas)
	assert.Equal(t, ptr(10_000_000.0), f.MinPrice)
	assert.Equal(t, ptr(20_000_000.0), f.MaxPrice)
	assert.Equal(t, ptr(3), f.MinBedrooms)
	assert.Equal(t, ptr(2), f.MinBathrooms)
	assert.Equal(t, "Residential", f.PropertyType)
	assert.Equal(t, "Detached Duplex", f.BuildingType)
	assert.Equal(t, "New", f.PropertyCondition)
	assert.Equal(t, ptr(300.0), f.MinLandSize)
	assert.Equal(t, []string{"C of O"}, f.ProvidedDocuments)
	assert.False(t, f.RequirePets)
}

func TestBuildCandidateFilter_Shortlet(t *testing.T) {
	checkIn := time.Date(2027, time.January, 5, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, time.January, 8, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		checkIn       *time.Time
		checkOut      *time.Time
		wantAvailable *domain.DateRange
	}{
		{"valid window", &checkIn, &checkOut, &domain.DateRange{From: checkIn, To: checkOut}},
		{"missing check-out", &checkIn, nil, nil},
		{"missing check-in", nil, &checkOut, nil},
		{"reversed window", &checkOut, &checkIn, nil},
		{"empty window", &checkIn, &checkIn, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BuildCandidateFilter(domain.PreferenceConstraints{
				Type:  domain.PreferenceTypeShortlet,
				State: "Lagos",
				Shortlet: &domain.ShortletConstraints{
					Guests:   ptr(3),
					CheckIn:  tt.checkIn,
					CheckOut: tt.checkOut,
					Pets:     true,
					Parties:  true,
				},
			})

			assert.Equal(t, ptr(3), f.MinGuests)
			assert.Equal(t, tt.wantAvailable, f.Available)
			assert.True(t, f.RequirePets)
			assert.False(t, f.RequireSmoking)
			assert.True(t, f.RequireParties)
		})
	}
}
