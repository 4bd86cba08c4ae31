package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/givehub/givehub/internal/ports"
)

// outboxRepository serves the relay worker. Outbox rows are inserted by the
// user and donation transactional ports, never through this type.
type outboxRepository struct {
	db *gorm.DB
}

func (r *outboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxRecord, error) {
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ports.OutboxRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, ports.OutboxRecord{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      []byte(row.Payload),
			RetryCount:   row.RetryCount,
			LastError:    row.LastError,
			CreatedAt:    row.CreatedAt,
			PublishedAt:  row.PublishedAt,
		})
	}
	return result, nil
}

func (r *outboxRepository) MarkPublished(ctx context.Context, outboxID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Update("published_at", at).Error
}

func (r *outboxRepository) MarkFailed(ctx context.Context, outboxID string, errMsg string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"retry_count":   gorm.Expr("retry_count + 1"),
			"last_error":    errMsg,
			"last_error_at": at,
		}).Error
}
