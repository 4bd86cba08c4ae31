package events

import (
	"context"
	"log/slog"
)

// LoggingPublisher is the broker-less fallback used when no Kafka brokers
// are configured. Events still leave the outbox; they just land in the log.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, eventType, partitionKey string, payload []byte) error {
	p.logger.InfoContext(ctx, "published event",
		"event_type", eventType,
		"partition_key", partitionKey,
		"payload", string(payload),
	)
	return nil
}
