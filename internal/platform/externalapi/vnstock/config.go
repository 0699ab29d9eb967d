// Package vnstock provides a client for the vnstock data bridge, an HTTP
// service exposing vnstock datasets as pandas "split" tables.
package vnstock

import "time"

// Config holds configuration for the vnstock bridge client.
type Config struct {
	BaseURL string        // Base URL of the bridge (e.g., "http://localhost:8000")
	Timeout time.Duration // HTTP request timeout
}
