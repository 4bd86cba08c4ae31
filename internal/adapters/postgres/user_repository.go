package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) CreateWithProfileTx(ctx context.Context, params ports.CreateUserParams, event ports.OutboxEvent) (domain.User, error) {
	var result domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := userModel{
			Email:          params.Email,
			Username:       params.Username,
			HashedPassword: params.HashedPassword,
			FullName:       nullableString(params.FullName),
			IsActive:       true,
			CreatedAt:      params.RegisteredAt,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return uniqueViolationError(err)
			}
			return err
		}

		profile := giverProfileModel{
			UserID:      rec.ID,
			ProfileType: string(domain.ProfileIndividual),
			IsPublic:    true,
			CreatedAt:   params.RegisteredAt,
		}
		if err := tx.Create(&profile).Error; err != nil {
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

		result = toDomainUser(rec)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return result, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	rec := toUserModel(user)
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"email":         rec.Email,
		"full_name":     rec.FullName,
		"first_name":    rec.FirstName,
		"last_name":     rec.LastName,
		"phone":         rec.Phone,
		"address_line1": rec.AddressLine1,
		"address_line2": rec.AddressLine2,
		"city":          rec.City,
		"state":         rec.State,
		"postal_code":   rec.PostalCode,
		"country":       rec.Country,
		"updated_at":    rec.UpdatedAt,
	})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.User{}, uniqueViolationError(res.Error)
		}
		return domain.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.User{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, user.ID)
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
