package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

type donationRepository struct {
	db *gorm.DB
}

func (r *donationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	rec := toDonationModel(donation)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Donation{}, err
	}
	return toDomainDonation(rec), nil
}

func (r *donationRepository) GetByID(ctx context.Context, donationID int64) (domain.Donation, error) {
	var rec donationModel
	if err := r.db.WithContext(ctx).Where("id = ?", donationID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Donation{}, domain.ErrDonationNotFound
		}
		return domain.Donation{}, err
	}
	return toDomainDonation(rec), nil
}

func (r *donationRepository) List(ctx context.Context, filter ports.DonationFilter) ([]domain.Donation, int64, float64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&donationModel{})
		if filter.CampaignID != 0 {
			query = query.Where("campaign_id = ?", filter.CampaignID)
		}
		if filter.GiverID != 0 {
			query = query.Where("giver_id = ?", filter.GiverID)
		}
		if filter.CompletedOnly {
			query = query.Where("payment_status = ?", string(domain.PaymentCompleted))
		}
		if filter.PublicOnly {
			query = query.Where("is_anonymous = FALSE")
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var totalAmount float64
	if err := scoped().Select("COALESCE(SUM(amount), 0)").Scan(&totalAmount).Error; err != nil {
		return nil, 0, 0, err
	}

	var rows []donationModel
	if err := scoped().
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, 0, err
	}

	result := make([]domain.Donation, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainDonation(row))
	}
	return result, total, totalAmount, nil
}

func (r *donationRepository) UpdateStatus(ctx context.Context, donationID int64, status domain.PaymentStatus, paymentIntentID string, at time.Time) (domain.Donation, error) {
	updates := map[string]any{
		"payment_status": string(status),
		"updated_at":     at,
	}
	if paymentIntentID != "" {
		updates["payment_intent_id"] = paymentIntentID
	}
	res := r.db.WithContext(ctx).Model(&donationModel{}).Where("id = ?", donationID).Updates(updates)
	if res.Error != nil {
		return domain.Donation{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Donation{}, domain.ErrDonationNotFound
	}
	return r.GetByID(ctx, donationID)
}

// CompleteTx flips the donation into completed and advances the campaign and
// giver aggregates in the same transaction. The row lock on the donation
// guarantees concurrent completions cannot double-count.
func (r *donationRepository) CompleteTx(ctx context.Context, donationID int64, paymentIntentID string, at time.Time, event ports.OutboxEvent) (domain.Donation, error) {
	var result domain.Donation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec donationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", donationID).
			Take(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDonationNotFound
			}
			return err
		}
		if rec.PaymentStatus == string(domain.PaymentCompleted) {
			return domain.ErrConflict
		}

		updates := map[string]any{
			"payment_status": string(domain.PaymentCompleted),
			"updated_at":     at,
		}
		if paymentIntentID != "" {
			updates["payment_intent_id"] = paymentIntentID
		}
		if err := tx.Model(&donationModel{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&campaignModel{}).
			Where("id = ?", rec.CampaignID).
			Updates(map[string]any{
				"current_amount": gorm.Expr("current_amount + ?", rec.Amount),
				"updated_at":     at,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&giverProfileModel{}).
			Where("id = ?", rec.GiverID).
			Updates(map[string]any{
				"total_donated":  gorm.Expr("total_donated + ?", rec.Amount),
				"donation_count": gorm.Expr("donation_count + 1"),
				"updated_at":     at,
			}).Error; err != nil {
			return err
		}

		payload := event.Payload
		if len(payload) == 0 {
			payload = []byte(`{}`)
		}
		outbox := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PartitionKey,
			Payload:      string(payload),
			CreatedAt:    event.OccurredAt,
		}
		if err := tx.Create(&outbox).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", rec.ID).Take(&rec).Error; err != nil {
			return err
		}
		result = toDomainDonation(rec)
		return nil
	})
	if err != nil {
		return domain.Donation{}, err
	}
	return result, nil
}
