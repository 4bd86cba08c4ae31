package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/givehub/givehub/internal/domain"
)

// Rate-limit buckets. Each bucket has its own quota and window; counters
// are keyed per client so one caller cannot exhaust another's budget.
const (
	bucketRegister = "register"
	bucketLogin    = "login"
)

// checkWindow performs the fixed-window admission check for one bucket.
// The counter keeps advancing past the quota so the denial itself never
// extends the window, and the store staying down degrades to fail-open
// rather than locking every client out.
func (s *Service) checkWindow(ctx context.Context, bucket, clientKey string, quota int64, window time.Duration) error {
	if s.windows == nil || clientKey == "" {
		return nil
	}

	count, resetIn, err := s.windows.Increment(ctx, clientKey+":"+bucket, window)
	if err != nil {
		slog.Default().WarnContext(ctx, "rate-limit store unavailable",
			"layer", "application",
			"operation", "rate_limit",
			"outcome", "warning",
			"bucket", bucket,
			"error", err,
		)
		return nil
	}
	if count > quota {
		return &domain.RateLimitError{RetryAfter: resetIn}
	}
	return nil
}
