package entity

import (
	"time"
)

// FilterDimension names one recognized search filter dimension.
type FilterDimension string

// Recognized filter dimensions. A dimension absent from a SearchFilters value
// means "unconstrained".
const (
	// Demographics
	FilterGender    FilterDimension = "gender"    // string set: "M", "F", "U"
	FilterAgeRange  FilterDimension = "ageRange"  // numeric range [min, max]
	FilterIncome    FilterDimension = "incomeRange"
	FilterEducation FilterDimension = "education"

	// Location
	FilterZipCodes FilterDimension = "zipCodes"
	FilterRadius   FilterDimension = "radius" // meters

	// Household
	FilterHomeowner     FilterDimension = "homeowner"
	FilterChildren      FilterDimension = "childrenPresent"
	FilterMaritalStatus FilterDimension = "maritalStatus"

	// Professional
	FilterBusinessOwner FilterDimension = "businessOwner"
	FilterOccupation    FilterDimension = "occupation"

	// Interests & lifestyle
	FilterInterests FilterDimension = "interests"
	FilterLifestyle FilterDimension = "lifestyleSegment"
	FilterPetOwner  FilterDimension = "petOwner"

	// Financial
	FilterNetWorth     FilterDimension = "netWorthRange"
	FilterHomeValue    FilterDimension = "homeValueRange"
	FilterCreditRating FilterDimension = "creditRating"

	// Behavioral
	FilterOnlineBuyer     FilterDimension = "onlineBuyer"
	FilterMailResponder   FilterDimension = "mailResponder"
	FilterCharitableDonor FilterDimension = "charitableDonor"
	FilterPolitical       FilterDimension = "politicalAffiliation"

	// Vehicles
	FilterVehicleOwner FilterDimension = "vehicleOwner"
	FilterVehicleType  FilterDimension = "vehicleType"
)

// SearchFilters maps filter dimension to value. Values are boolean flags,
// string sets or numeric ranges depending on the dimension; presence of a key
// is meaningful, so partial updates must distinguish "not mentioned" from
// "explicitly cleared" (a nil value in a patch clears the dimension).
//
// Values may arrive through JSON decoding, so the typed accessors tolerate
// the decoded shapes ([]any, float64) alongside native Go values.
type SearchFilters map[FilterDimension]any

// Clone returns an independent shallow copy. Slice values are copied so a
// snapshot cannot be mutated through the original.
func (f SearchFilters) Clone() SearchFilters {
	if f == nil {
		return SearchFilters{}
	}

	out := make(SearchFilters, len(f))
	for dim, val := range f {
		switch v := val.(type) {
		case []string:
			out[dim] = append([]string(nil), v...)
		case []any:
			out[dim] = append([]any(nil), v...)
		default:
			out[dim] = val
		}
	}

	return out
}

// Bool reads a boolean dimension. ok is false when the dimension is absent or
// carries a non-boolean value.
func (f SearchFilters) Bool(dim FilterDimension) (value, ok bool) {
	v, present := f[dim]
	if !present {
		return false, false
	}
	b, isBool := v.(bool)

	return b, isBool
}

// StringSlice reads a string-set dimension, accepting []string, a bare string
// and the JSON-decoded []any shape.
func (f SearchFilters) StringSlice(dim FilterDimension) []string {
	switch v := f[dim].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// Float reads a numeric dimension, accepting the JSON float64 shape and
// native integer values.
func (f SearchFilters) Float(dim FilterDimension) (float64, bool) {
	switch v := f[dim].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// IntRange reads a two-element numeric range dimension.
func (f SearchFilters) IntRange(dim FilterDimension) (lo, hi int, ok bool) {
	toInt := func(v any) (int, bool) {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		default:
			return 0, false
		}
	}

	switch v := f[dim].(type) {
	case [2]int:
		return v[0], v[1], true
	case []int:
		if len(v) == 2 {
			return v[0], v[1], true
		}
	case []any:
		if len(v) == 2 {
			a, okA := toInt(v[0])
			b, okB := toInt(v[1])
			if okA && okB {
				return a, b, true
			}
		}
	}

	return 0, 0, false
}

// FilterPreset is a named, timestamped snapshot of a SearchFilters value.
type FilterPreset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Filters     SearchFilters `json:"filters"` // Snapshot, never a live reference.
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// FilterSuggestion is a curated, read-only filter combination offered to the
// operator as a starting point.
type FilterSuggestion struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Category    string        `json:"category"` // demographic, financial, lifestyle or behavioral.
	Filters     SearchFilters `json:"filters"`
}

// DefaultFilterSuggestions returns the built-in filter suggestion list. A
// fresh copy is returned on each call so callers cannot mutate the defaults.
func DefaultFilterSuggestions() []FilterSuggestion {
	return []FilterSuggestion{
		{
			ID:          "affluent-homeowners",
			Label:       "Affluent Homeowners",
			Description: "High-income homeowners aged 35-65",
			Category:    "financial",
			Filters: SearchFilters{
				FilterHomeowner: true,
				FilterIncome:    []string{"$150K+"},
				FilterAgeRange:  [2]int{35, 65},
			},
		},
		{
			ID:          "young-professionals",
			Label:       "Young Professionals",
			Description: "Business owners and professionals aged 25-40",
			Category:    "demographic",
			Filters: SearchFilters{
				FilterBusinessOwner: true,
				FilterAgeRange:      [2]int{25, 40},
				FilterIncome:        []string{"$75K-$100K", "$100K-$150K", "$150K+"},
			},
		},
		{
			ID:          "families-with-kids",
			Label:       "Families with Kids",
			Description: "Homeowners with children",
			Category:    "lifestyle",
			Filters: SearchFilters{
				FilterChildren:  true,
				FilterHomeowner: true,
			},
		},
		{
			ID:          "pet-lovers",
			Label:       "Pet Lovers",
			Description: "Pet owners interested in animals",
			Category:    "lifestyle",
			Filters: SearchFilters{
				FilterPetOwner:  []string{"Dogs", "Cats"},
				FilterInterests: []string{"Pets", "Animals"},
			},
		},
		{
			ID:          "online-shoppers",
			Label:       "Online Shoppers",
			Description: "Active online buyers",
			Category:    "behavioral",
			Filters: SearchFilters{
				FilterOnlineBuyer: true,
			},
		},
		{
			ID:          "charitable-givers",
			Label:       "Charitable Givers",
			Description: "People who donate to charities",
			Category:    "behavioral",
			Filters: SearchFilters{
				FilterCharitableDonor: true,
			},
		},
	}
}
