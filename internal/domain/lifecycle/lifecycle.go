// Package lifecycle holds shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle step such as a database ping or HTTP shutdown.
const DefaultTimeout = 10 * time.Second
