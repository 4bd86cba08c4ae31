package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/givehub/givehub/internal/domain"
)

// UpdateMe changes the caller's account contact details. A new email must
// not collide with another account.
func (s *Service) UpdateMe(ctx context.Context, userID int64, req UserUpdateRequest) (UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return UserResponse{}, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
		}
		if email != user.Email {
			if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != user.ID {
				return UserResponse{}, domain.ErrEmailTaken
			} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return UserResponse{}, err
			}
			user.Email = email
		}
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	user.UpdatedAt = s.nowFn()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

// MyStats summarizes the caller's giving activity from their giver profile.
func (s *Service) MyStats(ctx context.Context, userID int64) (UserStatsResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UserStatsResponse{}, nil
		}
		return UserStatsResponse{}, err
	}
	return UserStatsResponse{
		TotalDonated:    profile.TotalDonated,
		DonationCount:   profile.DonationCount,
		HasGiverProfile: true,
	}, nil
}

// UsersCount reports the total number of registered accounts.
func (s *Service) UsersCount(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
