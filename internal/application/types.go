package application

import (
	"time"

	"github.com/givehub/givehub/internal/domain"
)

type Config struct {
	TokenTTL        time.Duration
	RegisterQuota   int64
	RegisterWindow  time.Duration
	LoginQuota      int64
	LoginWindow     time.Duration
	DefaultCurrency string
}

type RegisterRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type LoginRequest struct {
	Username string
	Password string
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public user projection. The hashed password never
// crosses this boundary.
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FullName   *string   `json:"full_name"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserUpdateRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

type UserStatsResponse struct {
	TotalDonated    float64 `json:"total_donated"`
	DonationCount   int     `json:"donation_count"`
	HasGiverProfile bool    `json:"has_giver_profile"`
}

type CampaignCreateRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CampaignType string     `json:"campaign_type"`
	GoalAmount   *float64   `json:"goal_amount"`
	Currency     string     `json:"currency"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ImageURL     *string    `json:"image_url"`
}

type CampaignUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	GoalAmount  *float64   `json:"goal_amount"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ImageURL    *string    `json:"image_url"`
}

type CampaignResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CampaignType  string     `json:"campaign_type"`
	GoalAmount    *float64   `json:"goal_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ImageURL      *string    `json:"image_url"`
	CreatorID     int64      `json:"creator_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

type CampaignListQuery struct {
	CampaignType string
	Status       string
	Page         int
	PageSize     int
}

type GiverProfileCreateRequest struct {
	ProfileType string  `json:"profile_type"`
	CompanyName *string `json:"company_name"`
	Bio         *string `json:"bio"`
	WebsiteURL  *string `json:"website_url"`
	IsPublic    *bool   `json:"is_public"`
}

type GiverProfileUpdateRequest struct {
	CompanyName *string `json:"company_name"`
	Bio         *string `json:"bio"`
	WebsiteURL  *string `json:"website_url"`
	IsPublic    *bool   `json:"is_public"`
}

type GiverProfileResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ProfileType   string    `json:"profile_type"`
	CompanyName   *string   `json:"company_name"`
	Bio           *string   `json:"bio"`
	WebsiteURL    *string   `json:"website_url"`
	TotalDonated  float64   `json:"total_donated"`
	DonationCount int       `json:"donation_count"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Username      string  `json:"username"`
	FullName      *string `json:"full_name"`
	ProfileType   string  `json:"profile_type"`
	CompanyName   *string `json:"company_name"`
	TotalDonated  float64 `json:"total_donated"`
	DonationCount int     `json:"donation_count"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Limit       int                `json:"limit"`
}

type DonationCreateRequest struct {
	CampaignID  int64   `json:"campaign_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	IsAnonymous bool    `json:"is_anonymous"`
	Message     *string `json:"message"`
}

type DonationResponse struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CampaignID    int64     `json:"campaign_id"`
	GiverID       int64     `json:"giver_id"`
	PaymentStatus string    `json:"payment_status"`
	IsAnonymous   bool      `json:"is_anonymous"`
	Message       *string   `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

type DonationListResponse struct {
	Donations   []DonationResponse `json:"donations"`
	Total       int64              `json:"total"`
	TotalAmount float64            `json:"total_amount"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
}

// NewUserResponse projects a domain user for transport adapters that
// already hold an authenticated user.
func NewUserResponse(u domain.User) UserResponse {
	return toUserResponse(u)
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FullName:   optionalString(u.FullName),
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func toCampaignResponse(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		CampaignType:  string(c.CampaignType),
		GoalAmount:    c.GoalAmount,
		CurrentAmount: c.CurrentAmount,
		Currency:      c.Currency,
		Status:        string(c.Status),
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ImageURL:      optionalString(c.ImageURL),
		CreatorID:     c.CreatorID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toGiverProfileResponse(p domain.GiverProfile) GiverProfileResponse {
	return GiverProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		ProfileType:   string(p.ProfileType),
		CompanyName:   optionalString(p.CompanyName),
		Bio:           optionalString(p.Bio),
		WebsiteURL:    optionalString(p.WebsiteURL),
		TotalDonated:  p.TotalDonated,
		DonationCount: p.DonationCount,
		IsPublic:      p.IsPublic,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toDonationResponse(d domain.Donation) DonationResponse {
	return DonationResponse{
		ID:            d.ID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		CampaignID:    d.CampaignID,
		GiverID:       d.GiverID,
		PaymentStatus: string(d.PaymentStatus),
		IsAnonymous:   d.IsAnonymous,
		Message:       optionalString(d.Message),
		CreatedAt:     d.CreatedAt,
	}
}

func toDonationResponses(items []domain.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toDonationResponse(d))
	}
	return out
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
