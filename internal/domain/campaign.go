package domain

import "time"

// CampaignType distinguishes the fundraising formats the platform hosts.
type CampaignType string

const (
	CampaignFundraising CampaignType = "fundraising"
	CampaignEvent       CampaignType = "event"
	CampaignAdhocGiving CampaignType = "adhoc_giving"
)

// ValidCampaignType reports whether t is one of the supported formats.
func ValidCampaignType(t CampaignType) bool {
	switch t {
	case CampaignFundraising, CampaignEvent, CampaignAdhocGiving:
		return true
	}
	return false
}

// CampaignStatus is the campaign lifecycle state.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// ValidCampaignStatus reports whether s is a known lifecycle state.
func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// Campaign is a fundraising campaign owned by its creator.
type Campaign struct {
	ID            int64
	Title         string
	Description   string
	CampaignType  CampaignType
	GoalAmount    *float64
	CurrentAmount float64
	Currency      string
	Status        CampaignStatus
	StartDate     *time.Time
	EndDate       *time.Time
	ImageURL      string
	CreatorID     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
