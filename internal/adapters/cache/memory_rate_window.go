package cache

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold bounds how large the window table may grow before an
// opportunistic sweep of fully elapsed windows runs inside Increment.
const sweepThreshold = 1024

type fixedWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryRateWindowStore keeps fixed-window counters in process memory behind
// a single mutex. Check-and-increment happens under the lock, so two
// concurrent requests for the same key can never both observe the same
// pre-increment count. Suitable for single-instance deployments; swap in the
// Redis store when counters must be shared.
type MemoryRateWindowStore struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow
	nowFn   func() time.Time
}

// NewMemoryRateWindowStore creates an empty in-memory window table.
func NewMemoryRateWindowStore() *MemoryRateWindowStore {
	return &MemoryRateWindowStore{
		windows: make(map[string]*fixedWindow),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryRateWindowStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &fixedWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	if len(s.windows) > sweepThreshold {
		s.sweepLocked(now)
	}

	return w.count, w.resetAt.Sub(now), nil
}

// sweepLocked drops fully elapsed windows. Unbounded growth from distinct
// client churn between sweeps is an accepted operational risk.
func (s *MemoryRateWindowStore) sweepLocked(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}
