package ratelimit

import (
	"context"
	"time"
)

// Record holds the fixed-window counter state for one identity.
type Record struct {
	WindowStart time.Time
	Count       int
}

// IsZero reports whether the record has never been written.
func (r Record) IsZero() bool {
	return r.WindowStart.IsZero() && r.Count == 0
}

// Store is the counter backend for the limiter. Implementations must make
// CompareAndSwap atomic per identity so concurrent admits cannot both win the
// last slot in a window.
type Store interface {
	// Get returns the current record for identity, or a zero Record when the
	// identity has never been seen.
	Get(ctx context.Context, identity string) (Record, error)

	// CompareAndSwap replaces the stored record with next only if the stored
	// record still equals old. A zero old means "create only if absent".
	// Returns false when the stored record no longer matches.
	CompareAndSwap(ctx context.Context, identity string, old, next Record) (bool, error)
}
