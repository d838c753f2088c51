package peoplesearch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"giftscout/internal/domain/entity"
)

// searchRequest is the provider's search/estimate request body.
type searchRequest struct {
	Filters      map[string]any `json:"filters"`
	CircleFilter circleFilter   `json:"circle_filter"`
	Format       string         `json:"format,omitempty"`
	Fieldset     string         `json:"fieldset,omitempty"`
	Limit        int            `json:"limit,omitempty"`
	Wait         int            `json:"wait,omitempty"`
}

type circleFilter struct {
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`
	Radius float64 `json:"radius"`
}

// buildProviderFilters translates the dimension map into the provider's flat
// field vocabulary. Boolean dimensions become "Y"/"N" strings; single-element
// string sets collapse to a scalar where the provider expects one.
func buildProviderFilters(filters entity.SearchFilters) map[string]any {
	out := map[string]any{}
	if len(filters) == 0 {
		return out
	}

	setStrings := func(dim entity.FilterDimension, field string, scalarWhenSingle bool) {
		values := filters.StringSlice(dim)
		if len(values) == 0 {
			return
		}
		if scalarWhenSingle && len(values) == 1 {
			out[field] = values[0]
			return
		}
		out[field] = values
	}
	setYesNo := func(dim entity.FilterDimension, field string) {
		if v, ok := filters.Bool(dim); ok {
			if v {
				out[field] = "Y"
			} else {
				out[field] = "N"
			}
		}
	}

	setStrings(entity.FilterGender, "Voters_Gender", true)
	setStrings(entity.FilterIncome, "Estimated_Income", false)
	setStrings(entity.FilterZipCodes, "Residence_Addresses_Zip", true)
	setYesNo(entity.FilterHomeowner, "Homeowner_Probability_Model")
	setYesNo(entity.FilterChildren, "Presence_of_Children")
	setYesNo(entity.FilterBusinessOwner, "Business_Owner")
	setStrings(entity.FilterMaritalStatus, "Marital_Status", false)
	setStrings(entity.FilterOccupation, "Occupation_Group", false)
	setStrings(entity.FilterEducation, "Education_Level", false)
	setStrings(entity.FilterInterests, "Interest_Categories", false)
	setStrings(entity.FilterNetWorth, "Net_Worth", false)
	setStrings(entity.FilterHomeValue, "Home_Market_Value", false)
	setStrings(entity.FilterCreditRating, "Credit_Rating", false)
	setYesNo(entity.FilterOnlineBuyer, "Online_Buyer")
	setYesNo(entity.FilterMailResponder, "Mail_Order_Responder")
	setYesNo(entity.FilterCharitableDonor, "Charitable_Donor")
	setStrings(entity.FilterPolitical, "Political_Party", false)
	setYesNo(entity.FilterVehicleOwner, "Vehicle_Owner")
	setStrings(entity.FilterVehicleType, "Vehicle_Type", false)
	setStrings(entity.FilterPetOwner, "Pet_Owner_Type", false)
	setStrings(entity.FilterLifestyle, "Lifestyle_Segment", false)

	return out
}

func buildEstimateRequest(center orb.Point, radiusMeters float64, filters entity.SearchFilters) searchRequest {
	return searchRequest{
		Filters: buildProviderFilters(filters),
		CircleFilter: circleFilter{
			Lat:    center.Lat(),
			Long:   center.Lon(),
			Radius: radiusMeters,
		},
	}
}

func buildSearchRequest(center orb.Point, radiusMeters float64, filters entity.SearchFilters, limit, maxRecords, waitMs int, fieldset string) searchRequest {
	req := buildEstimateRequest(center, radiusMeters, filters)
	req.Format = "json"
	req.Fieldset = fieldset
	req.Limit = min(limit, maxRecords)
	req.Wait = waitMs

	return req
}

// InterestFieldMatcher decides whether a provider field name marks an
// interest category, so the matching rule can follow a provider's schema
// without touching the rest of the translator.
type InterestFieldMatcher func(field string) bool

// DefaultInterestMatcher matches the marker substrings the provider spreads
// across its interest columns.
func DefaultInterestMatcher(field string) bool {
	return strings.Contains(field, "Interest") || strings.Contains(field, "Enthusiast") ||
		strings.Contains(field, "Buyer") || strings.Contains(field, "Collector")
}

// decodePerson maps one raw provider record into a Person. Missing or
// unparseable fields degrade to zero values rather than failing the record.
// A nil matcher falls back to DefaultInterestMatcher.
func decodePerson(record map[string]any, now time.Time, isInterestField InterestFieldMatcher) entity.Person {
	if isInterestField == nil {
		isInterestField = DefaultInterestMatcher
	}
	p := entity.Person{
		ID:        recordID(record),
		Latitude:  recordFloat(record, "Latitude"),
		Longitude: recordFloat(record, "Longitude"),

		FirstName: firstString(record, "Voters_FirstName", "First_Name"),
		LastName:  firstString(record, "Voters_LastName", "Last_Name"),
		FullName:  recordString(record, "Full_Name"),
		Gender:    firstString(record, "Voters_Gender", "Gender"),
		Address:   buildAddress(record),
		ZipCode:   firstString(record, "Residence_Addresses_Zip", "Zip_Code"),

		Phone: firstString(record, "Cell_Phone", "Landline"),
		Email: recordString(record, "Email"),

		EstimatedIncome: recordString(record, "Estimated_Income"),
		NetWorth:        recordString(record, "Household_Net_Worth"),
		HomeValue:       recordString(record, "Home_Est_Current_Value"),

		HouseholdSize:   recordInt(record, "Number_of_Persons_in_Unit"),
		MaritalStatus:   recordString(record, "Marital_Status"),
		ChildrenPresent: recordString(record, "Presence_of_Children") == "Y",
		Homeowner:       recordString(record, "Homeowner_Probability_Model") == "Y",

		Occupation:    recordString(record, "Occupation_of_Person"),
		BusinessOwner: recordString(record, "Business_Owner") == "Y",

		Interests: extractInterests(record, isInterestField),
		Raw:       record,
	}

	p.Age = recordInt(record, "Age")
	if p.Age == 0 {
		p.Age = ageFromBirthDate(recordString(record, "Date_of_Birth"), now)
	}

	return p
}

func recordID(record map[string]any) string {
	if id := firstString(record, "LALVOTERID", "Individual_ID"); id != "" {
		return id
	}

	return "person-" + uuid.NewString()
}

// buildAddress joins house number, street, city and state, skipping blanks.
func buildAddress(record map[string]any) string {
	parts := make([]string, 0, 4)
	for _, key := range []string{
		"Residence_Addresses_HouseNumber",
		"Residence_Addresses_StreetName",
		"Residence_Addresses_City",
		"Residence_Addresses_State",
	} {
		if v := recordString(record, key); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " ")
}

// ageFromBirthDate derives whole years elapsed since the birth date. Returns 0
// when the date is absent or unparseable.
func ageFromBirthDate(dob string, now time.Time) int {
	if dob == "" {
		return 0
	}

	var birth time.Time
	var err error
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05Z07:00", "01/02/2006"} {
		birth, err = time.Parse(layout, dob)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0
	}

	age := time.Unix(0, 0).UTC().Add(now.Sub(birth)).Year() - 1970
	if age < 0 {
		return -age
	}

	return age
}

// extractInterests scans field names with the matcher and keeps the ones
// flagged affirmative, with underscores readable as spaces.
func extractInterests(record map[string]any, isInterestField InterestFieldMatcher) []string {
	var interests []string
	for key, value := range record {
		if !isInterestField(key) {
			continue
		}
		if value == "Y" || value == true {
			interests = append(interests, strings.ReplaceAll(key, "_", " "))
		}
	}

	return interests
}

func recordString(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func firstString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := recordString(record, key); v != "" {
			return v
		}
	}

	return ""
}

func recordFloat(record map[string]any, key string) float64 {
	switch v := record[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func recordInt(record map[string]any, key string) int {
	switch v := record[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
