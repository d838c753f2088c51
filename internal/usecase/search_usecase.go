package usecase

import (
	"context"

	"github.com/paulmach/orb"

	"giftscout/internal/domain/entity"
)

// DemoPeopleGenerator fabricates a result set around a point when the
// people-search provider is unconfigured.
type DemoPeopleGenerator interface {
	GeneratePeople(center orb.Point) []entity.Person
}

// SearchUsecase drives the business-centric people discovery pipeline:
// focusing a business, shaping filters, estimating result volume and running
// the actual (cost-incurring) fetch.
type SearchUsecase interface {
	// SetBusiness focuses a business and kicks the search pipeline for it.
	SetBusiness(ctx context.Context, business entity.Business) error

	// ClearBusiness drops the focused business, the result set and the
	// current estimate.
	ClearBusiness(ctx context.Context)

	// ApplyFilters merges a filter patch and schedules a debounced estimate
	// refresh. A nil value for a dimension clears it.
	ApplyFilters(ctx context.Context, patch entity.SearchFilters)

	// ResetFilters clears all filters and schedules an estimate refresh.
	ResetFilters(ctx context.Context)

	// RunSearch executes the estimate-before-fetch policy against the
	// focused business and replaces the result set on success.
	RunSearch(ctx context.Context) error

	// Columns lists the provider's available record fields.
	Columns(ctx context.Context) ([]string, error)
}
