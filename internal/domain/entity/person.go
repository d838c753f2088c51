package entity

// Person is a candidate gift recipient discovered near a business.
// Instances are created by the provider record translator (or synthetically in
// demo mode) and are immutable; the current result set is replaced wholesale
// per search.
type Person struct {
	ID        string  `json:"id"`        // Provider-assigned identity, or synthesized when absent.
	Latitude  float64 `json:"latitude"`  // Geographic latitude; 0 when the record carried no parseable value.
	Longitude float64 `json:"longitude"` // Geographic longitude; 0 when the record carried no parseable value.

	// Demographics
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"` // "M", "F" or "U".
	Address   string `json:"address,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`

	// Contact
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	// Financial
	EstimatedIncome string `json:"estimated_income,omitempty"`
	NetWorth        string `json:"net_worth,omitempty"`
	HomeValue       string `json:"home_value,omitempty"`

	// Household
	HouseholdSize   int    `json:"household_size,omitempty"`
	MaritalStatus   string `json:"marital_status,omitempty"`
	ChildrenPresent bool   `json:"children_present,omitempty"`
	Homeowner       bool   `json:"homeowner,omitempty"`

	// Professional
	Occupation    string `json:"occupation,omitempty"`
	BusinessOwner bool   `json:"business_owner,omitempty"`

	// Interest categories extracted heuristically from provider field names.
	Interests []string `json:"interests,omitempty"`

	// Raw keeps every provider field of the source record so unmapped
	// attributes stay reachable. Never folded into the typed fields.
	Raw map[string]any `json:"-"`
}

// DisplayName returns the best available human-readable name for the person.
func (p Person) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.FirstName != "" || p.LastName != "" {
		switch {
		case p.FirstName == "":
			return p.LastName
		case p.LastName == "":
			return p.FirstName
		default:
			return p.FirstName + " " + p.LastName
		}
	}

	return "Unknown"
}

// SelectedPeople maps person identity to the selected person payload. It acts
// as a set with payload; membership is toggled one identity at a time.
type SelectedPeople map[string]Person
