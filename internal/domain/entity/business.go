// Package entity contains the core business objects of the project.
package entity

// Business is the anchor location around which people are searched.
// It is created from a geocoding result, immutable once set, and replaced
// wholesale when the operator runs a new search.
type Business struct {
	ID        string  `json:"id"`         // Identifier assigned by the geocoding provider.
	Name      string  `json:"name"`       // Display name of the business.
	Address   string  `json:"address"`    // Full formatted address.
	Latitude  float64 `json:"latitude"`   // Geographic latitude of the business.
	Longitude float64 `json:"longitude"`  // Geographic longitude of the business.
	PlaceType string  `json:"place_type"` // Optional place classification, e.g. "poi" or "address".
}
