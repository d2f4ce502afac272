// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as the HTTP
// server drain and the initial database ping.
const DefaultTimeout = 10 * time.Second
