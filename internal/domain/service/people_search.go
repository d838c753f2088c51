// Package service defines the interfaces the core depends on for external
// collaborators: the people-search provider, the fulfillment provider, the
// map surface, geocoding, event publishing and QR code generation.
package service

import (
	"context"

	"giftscout/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrJobPollingRequired is returned when the people-search provider answers a
// search with an asynchronous job token instead of inline records. Polling is
// intentionally unimplemented; callers must report this, not retry.
var ErrJobPollingRequired = errors.New("provider returned an asynchronous job; polling is not supported")

// PeopleSearcher performs the two-phase estimate/search protocol against the
// people-search provider.
type PeopleSearcher interface {
	// Estimate returns the approximate number of records matching the
	// filters inside the circle. Never negative.
	Estimate(ctx context.Context, center orb.Point, radiusMeters float64, filters entity.SearchFilters) (int, error)

	// Search fetches matching records, capped at the provider's hard
	// maximum regardless of limit. An empty result is not an error.
	Search(ctx context.Context, center orb.Point, radiusMeters float64, filters entity.SearchFilters, limit int) ([]entity.Person, error)

	// Columns fetches the provider's field catalog for filter-builder UIs.
	Columns(ctx context.Context) ([]string, error)

	// IsConfigured reports whether tenant identity and API key are both
	// present. When false, callers fall back to the demo generator.
	IsConfigured() bool
}
