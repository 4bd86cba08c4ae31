package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

type giverRepository struct {
	db *gorm.DB
}

func (r *giverRepository) Create(ctx context.Context, profile domain.GiverProfile) (domain.GiverProfile, error) {
	rec := toGiverProfileModel(profile)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.GiverProfile{}, domain.ErrConflict
		}
		return domain.GiverProfile{}, err
	}
	return toDomainGiverProfile(rec), nil
}

func (r *giverRepository) GetByUserID(ctx context.Context, userID int64) (domain.GiverProfile, error) {
	var rec giverProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GiverProfile{}, domain.ErrGiverProfileNotFound
		}
		return domain.GiverProfile{}, err
	}
	return toDomainGiverProfile(rec), nil
}

func (r *giverRepository) Update(ctx context.Context, profile domain.GiverProfile) (domain.GiverProfile, error) {
	rec := toGiverProfileModel(profile)
	res := r.db.WithContext(ctx).Model(&giverProfileModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"profile_type": rec.ProfileType,
		"company_name": rec.CompanyName,
		"bio":          rec.Bio,
		"website_url":  rec.WebsiteURL,
		"is_public":    rec.IsPublic,
		"updated_at":   rec.UpdatedAt,
	})
	if res.Error != nil {
		return domain.GiverProfile{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.GiverProfile{}, domain.ErrGiverProfileNotFound
	}

	var out giverProfileModel
	if err := r.db.WithContext(ctx).Where("id = ?", rec.ID).Take(&out).Error; err != nil {
		return domain.GiverProfile{}, err
	}
	return toDomainGiverProfile(out), nil
}

func (r *giverRepository) TopPublicGivers(ctx context.Context, profileType domain.ProfileType, limit int) ([]ports.LeaderboardRow, error) {
	type leaderboardScan struct {
		giverProfileModel
		Username string  `gorm:"column:username"`
		FullName *string `gorm:"column:full_name"`
	}

	query := r.db.WithContext(ctx).
		Table("giver_profiles").
		Select("giver_profiles.*, users.username, users.full_name").
		Joins("JOIN users ON users.id = giver_profiles.user_id").
		Where("giver_profiles.is_public = TRUE").
		Where("giver_profiles.total_donated > 0")
	if profileType != "" {
		query = query.Where("giver_profiles.profile_type = ?", string(profileType))
	}

	var rows []leaderboardScan
	if err := query.Order("giver_profiles.total_donated DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ports.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, ports.LeaderboardRow{
			Profile:  toDomainGiverProfile(row.giverProfileModel),
			Username: row.Username,
			FullName: stringValue(row.FullName),
		})
	}
	return result, nil
}
