// Package lifecycle holds shared start/stop conventions for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds component startup and graceful shutdown.
const DefaultTimeout = 10 * time.Second
