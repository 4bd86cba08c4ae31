package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

// CreateDonation opens a pending donation from the caller's giver profile
// against an active campaign. Aggregates move only when the payment
// completes, never at creation.
func (s *Service) CreateDonation(ctx context.Context, userID int64, req DonationCreateRequest) (DonationResponse, error) {
	if req.Amount <= 0 {
		return DonationResponse{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	campaign, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return DonationResponse{}, err
	}
	if campaign.Status != domain.CampaignActive {
		return DonationResponse{}, fmt.Errorf("%w: campaign is not accepting donations", domain.ErrInvalidInput)
	}

	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return DonationResponse{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	now := s.nowFn()
	donation, err := s.donations.Create(ctx, domain.Donation{
		Amount:        req.Amount,
		Currency:      currency,
		CampaignID:    campaign.ID,
		GiverID:       profile.ID,
		PaymentStatus: domain.PaymentPending,
		IsAnonymous:   req.IsAnonymous,
		Message:       stringDeref(req.Message),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return DonationResponse{}, err
	}
	return toDonationResponse(donation), nil
}

// CampaignDonations is the public donation feed for a campaign: completed
// payments only, anonymous donors hidden unless explicitly requested.
// The total amount always covers every completed donation.
func (s *Service) CampaignDonations(ctx context.Context, campaignID int64, includeAnonymous bool, page, pageSize int) (DonationListResponse, error) {
	if _, err := s.campaigns.GetByID(ctx, campaignID); err != nil {
		return DonationListResponse{}, err
	}

	page, pageSize = normalizePage(page, pageSize)
	items, total, _, err := s.donations.List(ctx, ports.DonationFilter{
		CampaignID:    campaignID,
		CompletedOnly: true,
		PublicOnly:    !includeAnonymous,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return DonationListResponse{}, err
	}

	_, _, totalAmount, err := s.donations.List(ctx, ports.DonationFilter{
		CampaignID:    campaignID,
		CompletedOnly: true,
		Limit:         1,
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

// GetDonation returns a donation to its donor or the campaign creator.
func (s *Service) GetDonation(ctx context.Context, userID, donationID int64) (DonationResponse, error) {
	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return DonationResponse{}, err
	}

	isDonor := false
	if profile, err := s.givers.GetByUserID(ctx, userID); err == nil {
		isDonor = profile.ID == donation.GiverID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return DonationResponse{}, err
	}

	isCreator := false
	if campaign, err := s.campaigns.GetByID(ctx, donation.CampaignID); err == nil {
		isCreator = campaign.CreatorID == userID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return DonationResponse{}, err
	}

	if !isDonor && !isCreator {
		return DonationResponse{}, fmt.Errorf("%w: not authorized to view this donation", domain.ErrForbidden)
	}
	return toDonationResponse(donation), nil
}

// UpdateDonationStatus moves a donation along the payment lifecycle. Only
// the donor may do this. The transition into completed applies the campaign
// and giver aggregates atomically with the status change; repeating it is
// a no-op conflict rather than a double count.
func (s *Service) UpdateDonationStatus(ctx context.Context, userID, donationID int64, status, paymentIntentID string) (DonationResponse, error) {
	newStatus := domain.PaymentStatus(status)
	if !domain.ValidPaymentStatus(newStatus) {
		return DonationResponse{}, fmt.Errorf("%w: unknown payment status %q", domain.ErrInvalidInput, status)
	}

	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return DonationResponse{}, err
	}

	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil || profile.ID != donation.GiverID {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return DonationResponse{}, err
		}
		return DonationResponse{}, fmt.Errorf("%w: not authorized to update this donation", domain.ErrForbidden)
	}

	now := s.nowFn()
	if newStatus == domain.PaymentCompleted && donation.PaymentStatus != domain.PaymentCompleted {
		payload, _ := json.Marshal(map[string]any{
			"donation_id":  donation.ID,
			"campaign_id":  donation.CampaignID,
			"giver_id":     donation.GiverID,
			"amount":       donation.Amount,
			"currency":     donation.Currency,
			"completed_at": now,
		})
		completed, err := s.donations.CompleteTx(ctx, donation.ID, paymentIntentID, now, ports.OutboxEvent{
			EventID:      uuid.NewString(),
			EventType:    "donation.completed",
			PartitionKey: strconv.FormatInt(donation.CampaignID, 10),
			Payload:      payload,
			OccurredAt:   now,
		})
		if err != nil {
			return DonationResponse{}, err
		}
		return toDonationResponse(completed), nil
	}

	updated, err := s.donations.UpdateStatus(ctx, donation.ID, newStatus, paymentIntentID, now)
	if err != nil {
		return DonationResponse{}, err
	}
	return toDonationResponse(updated), nil
}

// MyDonations lists every donation the caller has made, any status. The
// total amount still counts completed payments only.
func (s *Service) MyDonations(ctx context.Context, userID int64, page, pageSize int) (DonationListResponse, error) {
	profile, err := s.givers.GetByUserID(ctx, userID)
	if err != nil {
		return DonationListResponse{}, err
	}

	page, pageSize = normalizePage(page, pageSize)
	items, total, _, err := s.donations.List(ctx, ports.DonationFilter{
		GiverID: profile.ID,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	})
	if err != nil {
		return DonationListResponse{}, err
	}

	_, _, totalAmount, err := s.donations.List(ctx, ports.DonationFilter{
		GiverID:       profile.ID,
		CompletedOnly: true,
		Limit:         1,
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
