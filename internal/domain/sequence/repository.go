package sequence

import (
	"context"
)

// Store allocates values from named counting series.
//
// Next must be a single atomic read-increment-write against the backing
// store: two concurrent callers on the same key must never observe the same
// value. Values are strictly increasing per key but not gap-free — a value
// consumed by a caller that later fails to persist its parent record is
// never reused. Implementations must not cache the last issued value in
// process.
type Store interface {
	// Next returns the next value for key, creating the series with
	// value 1 on first allocation.
	Next(ctx context.Context, key Key) (int64, error)
}
