package ports

import (
	"context"
	"time"
)

// RateWindowStore tracks fixed-window request counters per key.
//
// Increment is an atomic check-and-increment: when no window exists for the
// key, or the current one has fully elapsed, a new window starts with
// count 1; otherwise the existing count advances. It returns the count after
// the increment and the time remaining until the window resets. Two
// concurrent callers must never observe the same pre-increment count.
type RateWindowStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}
