package postgres

import (
	"strings"
	"time"

	"github.com/givehub/givehub/internal/domain"
)

func toDomainUser(row userModel) domain.User {
	return domain.User{
		ID:             row.ID,
		Email:          row.Email,
		Username:       row.Username,
		HashedPassword: row.HashedPassword,
		FullName:       stringValue(row.FullName),
		FirstName:      stringValue(row.FirstName),
		LastName:       stringValue(row.LastName),
		Phone:          stringValue(row.Phone),
		AddressLine1:   stringValue(row.AddressLine1),
		AddressLine2:   stringValue(row.AddressLine2),
		City:           stringValue(row.City),
		State:          stringValue(row.State),
		PostalCode:     stringValue(row.PostalCode),
		Country:        stringValue(row.Country),
		IsActive:       row.IsActive,
		IsVerified:     row.IsVerified,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      timeValue(row.UpdatedAt, row.CreatedAt),
	}
}

func toUserModel(user domain.User) userModel {
	updatedAt := user.UpdatedAt
	return userModel{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		FullName:       nullableString(user.FullName),
		FirstName:      nullableString(user.FirstName),
		LastName:       nullableString(user.LastName),
		Phone:          nullableString(user.Phone),
		AddressLine1:   nullableString(user.AddressLine1),
		AddressLine2:   nullableString(user.AddressLine2),
		City:           nullableString(user.City),
		State:          nullableString(user.State),
		PostalCode:     nullableString(user.PostalCode),
		Country:        nullableString(user.Country),
		IsActive:       user.IsActive,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      &updatedAt,
	}
}

func toDomainCampaign(row campaignModel) domain.Campaign {
	return domain.Campaign{
		ID:            row.ID,
		Title:         row.Title,
		Description:   stringValue(row.Description),
		CampaignType:  domain.CampaignType(row.CampaignType),
		GoalAmount:    row.GoalAmount,
		CurrentAmount: row.CurrentAmount,
		Currency:      row.Currency,
		Status:        domain.CampaignStatus(row.Status),
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		ImageURL:      stringValue(row.ImageURL),
		CreatorID:     row.CreatorID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     timeValue(row.UpdatedAt, row.CreatedAt),
	}
}

func toCampaignModel(campaign domain.Campaign) campaignModel {
	updatedAt := campaign.UpdatedAt
	return campaignModel{
		ID:            campaign.ID,
		Title:         campaign.Title,
		Description:   nullableString(campaign.Description),
		CampaignType:  string(campaign.CampaignType),
		GoalAmount:    campaign.GoalAmount,
		CurrentAmount: campaign.CurrentAmount,
		Currency:      campaign.Currency,
		Status:        string(campaign.Status),
		StartDate:     campaign.StartDate,
		EndDate:       campaign.EndDate,
		ImageURL:      nullableString(campaign.ImageURL),
		CreatorID:     campaign.CreatorID,
		CreatedAt:     campaign.CreatedAt,
		UpdatedAt:     &updatedAt,
	}
}

func toDomainGiverProfile(row giverProfileModel) domain.GiverProfile {
	return domain.GiverProfile{
		ID:            row.ID,
		UserID:        row.UserID,
		ProfileType:   domain.ProfileType(row.ProfileType),
		CompanyName:   stringValue(row.CompanyName),
		Bio:           stringValue(row.Bio),
		WebsiteURL:    stringValue(row.WebsiteURL),
		TotalDonated:  row.TotalDonated,
		DonationCount: row.DonationCount,
		IsPublic:      row.IsPublic,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     timeValue(row.UpdatedAt, row.CreatedAt),
	}
}

func toGiverProfileModel(profile domain.GiverProfile) giverProfileModel {
	updatedAt := profile.UpdatedAt
	return giverProfileModel{
		ID:            profile.ID,
		UserID:        profile.UserID,
		ProfileType:   string(profile.ProfileType),
		CompanyName:   nullableString(profile.CompanyName),
		Bio:           nullableString(profile.Bio),
		WebsiteURL:    nullableString(profile.WebsiteURL),
		TotalDonated:  profile.TotalDonated,
		DonationCount: profile.DonationCount,
		IsPublic:      profile.IsPublic,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     &updatedAt,
	}
}

func toDomainDonation(row donationModel) domain.Donation {
	return domain.Donation{
		ID:              row.ID,
		Amount:          row.Amount,
		Currency:        row.Currency,
		CampaignID:      row.CampaignID,
		GiverID:         row.GiverID,
		PaymentStatus:   domain.PaymentStatus(row.PaymentStatus),
		PaymentIntentID: stringValue(row.PaymentIntentID),
		IsAnonymous:     row.IsAnonymous,
		Message:         stringValue(row.Message),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       timeValue(row.UpdatedAt, row.CreatedAt),
	}
}

func toDonationModel(donation domain.Donation) donationModel {
	updatedAt := donation.UpdatedAt
	return donationModel{
		ID:              donation.ID,
		Amount:          donation.Amount,
		Currency:        donation.Currency,
		CampaignID:      donation.CampaignID,
		GiverID:         donation.GiverID,
		PaymentStatus:   string(donation.PaymentStatus),
		PaymentIntentID: nullableString(donation.PaymentIntentID),
		IsAnonymous:     donation.IsAnonymous,
		Message:         nullableString(donation.Message),
		CreatedAt:       donation.CreatedAt,
		UpdatedAt:       &updatedAt,
	}
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func nullableString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func timeValue(v *time.Time, fallback time.Time) time.Time {
	if v == nil {
		return fallback
	}
	return *v
}
