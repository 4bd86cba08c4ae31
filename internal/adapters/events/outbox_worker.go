package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/givehub/givehub/internal/ports"
)

// OutboxWorker drains unpublished outbox records to the event publisher.
// Separating transactional writes from broker delivery means a broker outage
// never fails a user request; events catch up when delivery recovers.
type OutboxWorker struct {
	logger     *slog.Logger
	outbox     ports.OutboxRepository
	publisher  ports.EventPublisher
	interval   time.Duration
	batchSize  int
	maxRetries int
}

func NewOutboxWorker(
	logger *slog.Logger,
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	interval time.Duration,
	batchSize int,
	maxRetries int,
) *OutboxWorker {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &OutboxWorker{
		logger:     logger,
		outbox:     outbox,
		publisher:  publisher,
		interval:   interval,
		batchSize:  batchSize,
		maxRetries: maxRetries,
	}
}

// Run executes the periodic publish loop until context cancellation.
func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.processOnce(ctx); err != nil {
			w.logger.ErrorContext(ctx, "outbox iteration failed",
				"layer", "adapter",
				"operation", "outbox_process_once",
				"outcome", "failure",
				"error", err,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *OutboxWorker) processOnce(ctx context.Context) error {
	records, err := w.outbox.FetchUnpublished(ctx, w.batchSize)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	published := 0
	failed := 0
	for _, rec := range records {
		if rec.RetryCount >= w.maxRetries {
			continue
		}

		if err := w.publisher.Publish(ctx, rec.EventType, rec.PartitionKey, rec.Payload); err != nil {
			failed++
			w.logger.WarnContext(ctx, "outbox publish failed; retry scheduled",
				"layer", "adapter",
				"operation", "publish_event",
				"outcome", "failure",
				"outbox_id", rec.OutboxID,
				"event_type", rec.EventType,
				"retry_count", rec.RetryCount+1,
				"error", err,
			)
			_ = w.outbox.MarkFailed(ctx, rec.OutboxID, err.Error(), now)
			continue
		}
		published++
		_ = w.outbox.MarkPublished(ctx, rec.OutboxID, now)
	}
	if len(records) > 0 {
		w.logger.InfoContext(ctx, "outbox batch processed",
			"layer", "adapter",
			"operation", "outbox_process_once",
			"outcome", "success",
			"batch_size", len(records),
			"published_count", published,
			"failed_count", failed,
		)
	}
	return nil
}
