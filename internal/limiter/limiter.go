// Package limiter defines the resync throttle and its backends.
package limiter

import (
	"context"
	"time"
)

// Throttle collapses repeated requests for the same key within a window.
type Throttle interface {
	// Acquire reports whether the caller holds key for the window. A false
	// result means another caller already acquired it and the window is open.
	Acquire(ctx context.Context, key string) (bool, error)
}

// DefaultWindow is used when a backend is constructed with a zero window.
const DefaultWindow = 30 * time.Second

func windowOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultWindow
	}
	return d
}
