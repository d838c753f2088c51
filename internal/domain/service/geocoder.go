package service

import (
	"context"

	"giftscout/internal/domain/entity"
)

// Geocoder resolves free-text business lookups to geocoded results. It is an
// external collaborator: the core only consumes a user-picked result to
// populate a Business, so the interface stays minimal.
type Geocoder interface {
	// Lookup returns candidate businesses for the query, best match first.
	Lookup(ctx context.Context, query string) ([]entity.Business, error)
}
