package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

type campaignRepository struct {
	db *gorm.DB
}

func (r *campaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	rec := toCampaignModel(campaign)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Campaign{}, err
	}
	return toDomainCampaign(rec), nil
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	var rec campaignModel
	if err := r.db.WithContext(ctx).Where("id = ?", campaignID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, domain.ErrCampaignNotFound
		}
		return domain.Campaign{}, err
	}
	return toDomainCampaign(rec), nil
}

func (r *campaignRepository) List(ctx context.Context, filter ports.CampaignFilter) ([]domain.Campaign, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&campaignModel{})
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.CampaignType != "" {
			query = query.Where("campaign_type = ?", string(filter.CampaignType))
		}
		if filter.CreatorID != 0 {
			query = query.Where("creator_id = ?", filter.CreatorID)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []campaignModel
	if err := scoped().Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	result := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainCampaign(row))
	}
	return result, total, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	rec := toCampaignModel(campaign)
	res := r.db.WithContext(ctx).Model(&campaignModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"title":         rec.Title,
		"description":   rec.Description,
		"campaign_type": rec.CampaignType,
		"goal_amount":   rec.GoalAmount,
		"currency":      rec.Currency,
		"status":        rec.Status,
		"start_date":    rec.StartDate,
		"end_date":      rec.EndDate,
		"image_url":     rec.ImageURL,
		"updated_at":    rec.UpdatedAt,
	})
	if res.Error != nil {
		return domain.Campaign{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return r.GetByID(ctx, campaign.ID)
}
