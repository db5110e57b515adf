package matching

import (
	"testing"
	"time"

	"preference_match/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePreference_Buy(t *testing.T) {
	pref := domain.Preference{
		ID:   uuid.New(),
		Type: domain.PreferenceTypeBuy,
		Location: domain.PreferenceLocation{
			State:                "Lagos",
			LocalGovernmentAreas: []string{"Ikeja", "", "Ikeja", "Eti-Osa"},
			LGAsWithAreas: []domain.LGAAreas{
				{LGAName: "Ikeja", Areas: []string{"GRA", "Alausa"}},
				{LGAName: "Eti-Osa", Areas: []string{"Lekki", "GRA"}},
			},
		},
		Budget: domain.Budget{MinPrice: ptr(10_000_000.0), MaxPrice: ptr(20_000_000.0)},
		Details: &domain.PropertyDetails{
			PropertyType:  "Residential",
			MinBedrooms:   "3",
			MinBathrooms:  "many",
			MinLandSize:   "450",
			DocumentTypes: []string{"C of O"},
		},
		Features: domain.PreferenceFeatures{BaseFeatures: []string{"Pool", "Pool", "Gym"}},
	}

	c, err := NormalizePreference(pref)
	require.NoError(t, err)

	assert.Equal(t, domain.PreferenceTypeBuy, c.Type)
	assert.Equal(t, "Lagos", c.State)
	assert.Equal(t, []string{"Ikeja", "Eti-Osa"}, c.LGAs)
	assert.Equal(t, []string{"GRA", "Alausa", "Lekki"}, c.Areas)
	assert.Equal(t, ptr(3), c.MinBedrooms)
	assert.Nil(t, c.MinBathrooms, "malformed numeric is treated as absent")
	assert.Equal(t, ptr(450.0), c.LandSizeMin)
	assert.Nil(t, c.LandSizeMax)
	assert.Equal(t, []string{"C of O"}, c.DocumentTypes)
	assert.Equal(t, []string{"Pool", "Gym"}, c.Features)
	assert.Nil(t, c.Shortlet)
}

func TestNormalizePreference_JointVentureTitleRequirements(t *testing.T) {
	pref := domain.Preference{
		Type:     domain.PreferenceTypeJointVenture,
		Location: domain.PreferenceLocation{State: "Abuja"},
		Details: &domain.DevelopmentDetails{
			MinLandSize:              "1000",
			MaxLandSize:              "5000",
			MinimumTitleRequirements: []string{"C of O", "Survey Plan"},
		},
	}

	c, err := NormalizePreference(pref)
	require.NoError(t, err)

	assert.Equal(t, ptr(1000.0), c.LandSizeMin)
	assert.Equal(t, ptr(5000.0), c.LandSizeMax)
	assert.Equal(t, []string{"C of O", "Survey Plan"}, c.DocumentTypes)
}

func TestNormalizePreference_Shortlet(t *testing.T) {
	checkIn := time.Date(2027, time.January, 5, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, time.January, 8, 11, 0, 0, 0, time.UTC)

	pref := domain.Preference{
		Type:     domain.PreferenceTypeShortlet,
		Location: domain.PreferenceLocation{State: "Lagos"},
		Details: &domain.BookingDetails{
			NumberOfGuests: "4",
			CheckInDate:    &checkIn,
			CheckOutDate:   &checkOut,
			PetsAllowed:    true,
		},
	}

	c, err := NormalizePreference(pref)
	require.NoError(t, err)
	require.NotNil(t, c.Shortlet)

	assert.Equal(t, ptr(4), c.Shortlet.Guests)
	assert.Equal(t, &checkIn, c.Shortlet.CheckIn)
	assert.Equal(t, &checkOut, c.Shortlet.CheckOut)
	assert.True(t, c.Shortlet.Pets)
	assert.False(t, c.Shortlet.Smoking)
	assert.False(t, c.Shortlet.Parties)
}

func TestNormalizePreference_NoDetails(t *testing.T) {
	c, err := NormalizePreference(domain.Preference{
		Type:     domain.PreferenceTypeRent,
		Location: domain.PreferenceLocation{State: "Lagos"},
	})
	require.NoError(t, err)

	assert.Nil(t, c.MinBedrooms)
	assert.Empty(t, c.PropertyType)
	assert.Nil(t, c.Shortlet)
}

func TestNormalizePreference_Invalid(t *testing.T) {
	tests := []struct {
		name string
		pref domain.Preference
	}{
		{"missing state", domain.Preference{Type: domain.PreferenceTypeBuy}},
		{"blank state", domain.Preference{Type: domain.PreferenceTypeBuy, Location: domain.PreferenceLocation{State: "   "}}},
		{"unknown type", domain.Preference{Type: "lease", Location: domain.PreferenceLocation{State: "Lagos"}}},
		{"details do not match type", domain.Preference{
			Type:     domain.PreferenceTypeShortlet,
			Location: domain.PreferenceLocation{State: "Lagos"},
			Details:  &domain.PropertyDetails{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePreference(tt.pref)
			assert.ErrorIs(t, err, ErrInvalidPreference)
		})
	}
}
