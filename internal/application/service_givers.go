package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

// MyGiverProfile returns the caller's giver profile.
func (s *Service) MyGiverProfile(ctx context.Context, userID int64) (GiverProfileResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return GiverProfileResponse{}, err
	}
	return toGiverProfileResponse(profile), nil
}

// CreateGiverProfile creates the caller's giver profile. Each user gets at
// most one; registration normally creates it already.
func (s *Service) CreateGiverProfile(ctx context.Context, userID int64, req GiverProfileCreateRequest) (GiverProfileResponse, error) {
	if _, err := s.givers.GetByUserID(ctx, userID); err == nil {
		return GiverProfileResponse{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return GiverProfileResponse{}, err
	}

	profileType := domain.ProfileType(req.ProfileType)
	if req.ProfileType == "" {
		profileType = domain.ProfileIndividual
	}
	if !domain.ValidProfileType(profileType) {
		return GiverProfileResponse{}, fmt.Errorf("%w: unknown profile type %q", domain.ErrInvalidInput, req.ProfileType)
	}
	if profileType == domain.ProfileCompany && stringDeref(req.CompanyName) == "" {
		return GiverProfileResponse{}, fmt.Errorf("%w: company_name is required for company profiles", domain.ErrInvalidInput)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := s.nowFn()
	profile, err := s.givers.Create(ctx, domain.GiverProfile{
		UserID:      userID,
		ProfileType: profileType,
		CompanyName: stringDeref(req.CompanyName),
		Bio:         stringDeref(req.Bio),
		WebsiteURL:  stringDeref(req.WebsiteURL),
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return GiverProfileResponse{}, err
	}
	return toGiverProfileResponse(profile), nil
}

// UpdateGiverProfile applies a partial update to the caller's profile.
func (s *Service) UpdateGiverProfile(ctx context.Context, userID int64, req GiverProfileUpdateRequest) (GiverProfileResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return GiverProfileResponse{}, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.WebsiteURL != nil {
		profile.WebsiteURL = *req.WebsiteURL
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}
	profile.UpdatedAt = s.nowFn()

	updated, err := s.givers.Update(ctx, profile)
	if err != nil {
		return GiverProfileResponse{}, err
	}
	return toGiverProfileResponse(updated), nil
}

// PublicGiverProfile returns another user's profile only when it is public.
// A private profile is indistinguishable from a missing one.
func (s *Service) PublicGiverProfile(ctx context.Context, userID int64) (GiverProfileResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return GiverProfileResponse{}, err
	}
	if !profile.IsPublic {
		return GiverProfileResponse{}, domain.ErrGiverProfileNotFound
	}
	return toGiverProfileResponse(profile), nil
}

// MyDonationHistory lists the caller's completed donations.
func (s *Service) MyDonationHistory(ctx context.Context, userID int64, page, pageSize int) (DonationListResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return DonationListResponse{}, err
	}

	page, pageSize = normalizePage(page, pageSize)
	items, total, totalAmount, err := s.donations.List(ctx, ports.DonationFilter{
		GiverID:       profile.ID,
		CompletedOnly: true,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return DonationListResponse{}, err
	}
	return DonationListResponse{
		Donations:   toDonationResponses(items),
		Total:       total,
		TotalAmount: totalAmount,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// PublicDonationHistory lists another user's donations: public profile,
// completed, non-anonymous only.
func (s *Service) PublicDonationHistory(ctx context.Context, userID int64, page, pageSize int) (DonationListResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return DonationListResponse{}, err
	}
	if !profile.IsPublic {
		return DonationListResponse{}, domain.ErrGiverProfileNotFound
	}

	page, pageSize = normalizePage(page, pageSize)
	items, total, totalAmount, err := s.donations.List(ctx, ports.DonationFilter{
		GiverID:       profile.ID,
		CompletedOnly: true,
		PublicOnly:    true,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return DonationListResponse{}, err
	}
	return DonationListResponse{
		Donations:   toDonationResponses(items),
		Total:       total,
		TotalAmount: totalAmount,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Leaderboard ranks public givers by lifetime donated amount.
func (s *Service) Leaderboard(ctx context.Context, profileType string, limit int) (LeaderboardResponse, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filter := domain.ProfileType(profileType)
	if profileType != "" && !domain.ValidProfileType(filter) {
		return LeaderboardResponse{}, fmt.Errorf("%w: unknown profile type %q", domain.ErrInvalidInput, profileType)
	}

	rows, err := s.givers.TopPublicGivers(ctx, filter, limit)
	if err != nil {
		return LeaderboardResponse{}, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			Username:      row.Username,
			FullName:      optionalString(row.FullName),
			ProfileType:   string(row.Profile.ProfileType),
			CompanyName:   optionalString(row.Profile.CompanyName),
			TotalDonated:  row.Profile.TotalDonated,
			DonationCount: row.Profile.DonationCount,
		})
	}
	return LeaderboardResponse{Leaderboard: entries, Limit: limit}, nil
}
