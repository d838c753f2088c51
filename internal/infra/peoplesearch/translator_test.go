package peoplesearch

import (
	"strings"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftscout/internal/domain/entity"
)

func TestBuildProviderFilters(t *testing.T) {
	filters := entity.SearchFilters{
		entity.FilterGender:        []string{"F"},
		entity.FilterIncome:        []string{"$100K-$150K", "$150K+"},
		entity.FilterZipCodes:      []string{"10001", "10002"},
		entity.FilterHomeowner:     true,
		entity.FilterOnlineBuyer:   false,
		entity.FilterMaritalStatus: []string{"Married"},
	}

	got := buildProviderFilters(filters)

	assert.Equal(t, "F", got["Voters_Gender"], "single-element set collapses to scalar")
	assert.Equal(t, []string{"$100K-$150K", "$150K+"}, got["Estimated_Income"])
	assert.Equal(t, []string{"10001", "10002"}, got["Residence_Addresses_Zip"])
	assert.Equal(t, "Y", got["Homeowner_Probability_Model"])
	assert.Equal(t, "N", got["Online_Buyer"])
	assert.Equal(t, []string{"Married"}, got["Marital_Status"])
	assert.NotContains(t, got, "Presence_of_Children", "unset dimensions are omitted")
}

func TestBuildProviderFilters_Empty(t *testing.T) {
	assert.Empty(t, buildProviderFilters(nil))
	assert.Empty(t, buildProviderFilters(entity.SearchFilters{}))
}

func TestBuildSearchRequest_CapsLimit(t *testing.T) {
	req := buildSearchRequest(orb.Point{-74.006, 40.7128}, 5000, nil, 2000, 500, 30000, "EXTENDED")

	assert.Equal(t, 500, req.Limit)
	assert.Equal(t, "json", req.Format)
	assert.Equal(t, "EXTENDED", req.Fieldset)
	assert.Equal(t, 30000, req.Wait)
	assert.Equal(t, 40.7128, req.CircleFilter.Lat)
	assert.Equal(t, -74.006, req.CircleFilter.Long)
	assert.Equal(t, 5000.0, req.CircleFilter.Radius)
}

func TestDecodePerson(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	record := map[string]any{
		"LALVOTERID":                      "LAL123",
		"Latitude":                        "40.71",
		"Longitude":                       "-74.00",
		"Voters_FirstName":                "Ada",
		"Voters_LastName":                 "Lovelace",
		"Voters_Gender":                   "F",
		"Residence_Addresses_HouseNumber": "12",
		"Residence_Addresses_StreetName":  "Broadway",
		"Residence_Addresses_City":        "New York",
		"Residence_Addresses_State":       "NY",
		"Residence_Addresses_Zip":         "10001",
		"Cell_Phone":                      "555-0100",
		"Estimated_Income":                "$150K+",
		"Household_Net_Worth":             "$1M+",
		"Number_of_Persons_in_Unit":       "3",
		"Presence_of_Children":            "Y",
		"Homeowner_Probability_Model":     "Y",
		"Business_Owner":                  "N",
		"Date_of_Birth":                   "1990-06-15",
		"Golf_Enthusiast":                 "Y",
		"Wine_Collector":                  true,
		"Book_Buyer":                      "N",
	}

	p := decodePerson(record, now, nil)

	assert.Equal(t, "LAL123", p.ID)
	assert.InDelta(t, 40.71, p.Latitude, 1e-9)
	assert.InDelta(t, -74.00, p.Longitude, 1e-9)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "12 Broadway New York NY", p.Address)
	assert.Equal(t, "10001", p.ZipCode)
	assert.Equal(t, "555-0100", p.Phone)
	assert.Equal(t, "$1M+", p.NetWorth)
	assert.Equal(t, 3, p.HouseholdSize)
	assert.True(t, p.ChildrenPresent)
	assert.True(t, p.Homeowner)
	assert.False(t, p.BusinessOwner)
	assert.Equal(t, 36, p.Age)
	assert.ElementsMatch(t, []string{"Golf Enthusiast", "Wine Collector"}, p.Interests)
	assert.Equal(t, record, p.Raw)
}

func TestDecodePerson_Fallbacks(t *testing.T) {
	p := decodePerson(map[string]any{
		"First_Name": "Grace",
		"Latitude":   "not-a-number",
	}, time.Now(), nil)

	require.NotEmpty(t, p.ID)
	assert.Contains(t, p.ID, "person-", "missing provider ids are synthesized")
	assert.Zero(t, p.Latitude)
	assert.Zero(t, p.Longitude)
	assert.Equal(t, "Grace", p.FirstName)
	assert.Empty(t, p.Address)
	assert.Zero(t, p.Age)
}

func TestDecodePerson_PrefersExplicitAge(t *testing.T) {
	p := decodePerson(map[string]any{
		"Age":           float64(52),
		"Date_of_Birth": "1990-06-15",
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil)

	assert.Equal(t, 52, p.Age)
}

func TestDecodePerson_CustomInterestMatcher(t *testing.T) {
	record := map[string]any{
		"Hobby_Golf":      "Y",
		"Golf_Enthusiast": "Y",
	}

	p := decodePerson(record, time.Now(), func(field string) bool {
		return strings.HasPrefix(field, "Hobby_")
	})

	assert.Equal(t, []string{"Hobby Golf"}, p.Interests)
}

func TestBuildAddress_SkipsBlanks(t *testing.T) {
	addr := buildAddress(map[string]any{
		"Residence_Addresses_StreetName": "Broadway",
		"Residence_Addresses_State":      "NY",
	})

	assert.Equal(t, "Broadway NY", addr)
}
