// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import (
	"time"
)

// DefaultTimeout bounds graceful shutdown of deliveries and publishers.
const DefaultTimeout = 10 * time.Second
