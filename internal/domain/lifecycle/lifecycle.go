// Package lifecycle holds shared lifecycle constants for graceful shutdown.
package lifecycle

import "time"

// DefaultTimeout is the maximum time allowed for a delivery to shut down.
const DefaultTimeout = 10 * time.Second
