package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

// CreateCampaign opens a new campaign in draft status for the caller.
func (s *Service) CreateCampaign(ctx context.Context, creatorID int64, req CampaignCreateRequest) (CampaignResponse, error) {
	title := strings.TrimSpace(req.Title)
	if len(title) < 5 {
		return CampaignResponse{}, fmt.Errorf("%w: title must be at least 5 characters", domain.ErrInvalidInput)
	}
	if len(strings.TrimSpace(req.Description)) < 20 {
		return CampaignResponse{}, fmt.Errorf("%w: description must be at least 20 characters", domain.ErrInvalidInput)
	}

	campaignType := domain.CampaignType(req.CampaignType)
	if req.CampaignType == "" {
		campaignType = domain.CampaignFundraising
	}
	if !domain.ValidCampaignType(campaignType) {
		return CampaignResponse{}, fmt.Errorf("%w: unknown campaign type %q", domain.ErrInvalidInput, req.CampaignType)
	}
	if req.GoalAmount != nil && *req.GoalAmount <= 0 {
		return CampaignResponse{}, fmt.Errorf("%w: goal amount must be positive", domain.ErrInvalidInput)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}

	now := s.nowFn()
	campaign, err := s.campaigns.Create(ctx, domain.Campaign{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		CampaignType: campaignType,
		GoalAmount:   req.GoalAmount,
		Currency:     currency,
		Status:       domain.CampaignDraft,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ImageURL:     stringDeref(req.ImageURL),
		CreatorID:    creatorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return CampaignResponse{}, err
	}
	return toCampaignResponse(campaign), nil
}

// ListCampaigns pages through campaigns, newest first. An absent status
// filter defaults to active so the public feed never shows drafts.
func (s *Service) ListCampaigns(ctx context.Context, query CampaignListQuery) (CampaignListResponse, error) {
	status := domain.CampaignStatus(query.Status)
	if query.Status == "" {
		status = domain.CampaignActive
	} else if !domain.ValidCampaignStatus(status) {
		return CampaignListResponse{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, query.Status)
	}

	campaignType := domain.CampaignType(query.CampaignType)
	if query.CampaignType != "" && !domain.ValidCampaignType(campaignType) {
		return CampaignListResponse{}, fmt.Errorf("%w: unknown campaign type %q", domain.ErrInvalidInput, query.CampaignType)
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)
	items, total, err := s.campaigns.List(ctx, ports.CampaignFilter{
		Status:       status,
		CampaignType: campaignType,
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	})
	if err != nil {
		return CampaignListResponse{}, err
	}
	return CampaignListResponse{
		Campaigns: toCampaignResponses(items),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID int64) (CampaignResponse, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return CampaignResponse{}, err
	}
	return toCampaignResponse(campaign), nil
}

// UpdateCampaign applies a partial update. Only the creator may touch
// their campaign.
func (s *Service) UpdateCampaign(ctx context.Context, userID, campaignID int64, req CampaignUpdateRequest) (CampaignResponse, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return CampaignResponse{}, err
	}
	if campaign.CreatorID != userID {
		return CampaignResponse{}, fmt.Errorf("%w: you can only update your own campaigns", domain.ErrForbidden)
	}

	if req.Title != nil {
		if len(strings.TrimSpace(*req.Title)) < 5 {
			return CampaignResponse{}, fmt.Errorf("%w: title must be at least 5 characters", domain.ErrInvalidInput)
		}
		campaign.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if len(strings.TrimSpace(*req.Description)) < 20 {
			return CampaignResponse{}, fmt.Errorf("%w: description must be at least 20 characters", domain.ErrInvalidInput)
		}
		campaign.Description = strings.TrimSpace(*req.Description)
	}
	if req.GoalAmount != nil {
		if *req.GoalAmount <= 0 {
			return CampaignResponse{}, fmt.Errorf("%w: goal amount must be positive", domain.ErrInvalidInput)
		}
		campaign.GoalAmount = req.GoalAmount
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		if !domain.ValidCampaignStatus(status) {
			return CampaignResponse{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *req.Status)
		}
		campaign.Status = status
	}
	if req.StartDate != nil {
		campaign.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = req.EndDate
	}
	if req.ImageURL != nil {
		campaign.ImageURL = *req.ImageURL
	}
	campaign.UpdatedAt = s.nowFn()

	updated, err := s.campaigns.Update(ctx, campaign)
	if err != nil {
		return CampaignResponse{}, err
	}
	return toCampaignResponse(updated), nil
}

// DeleteCampaign soft-deletes by moving the campaign to cancelled.
func (s *Service) DeleteCampaign(ctx context.Context, userID, campaignID int64) error {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.CreatorID != userID {
		return fmt.Errorf("%w: you can only delete your own campaigns", domain.ErrForbidden)
	}

	campaign.Status = domain.CampaignCancelled
	campaign.UpdatedAt = s.nowFn()
	_, err = s.campaigns.Update(ctx, campaign)
	return err
}

// MyCampaigns pages through the caller's campaigns regardless of status.
func (s *Service) MyCampaigns(ctx context.Context, userID int64, page, pageSize int) (CampaignListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.campaigns.List(ctx, ports.CampaignFilter{
		CreatorID: userID,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	})
	if err != nil {
		return CampaignListResponse{}, err
	}
	return CampaignListResponse{
		Campaigns: toCampaignResponses(items),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func toCampaignResponses(items []domain.Campaign) []CampaignResponse {
	out := make([]CampaignResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
