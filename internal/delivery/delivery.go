// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by main and
// stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
