// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to flush
// before exiting.
const TelemetryShutdown = 5 * time.Second
