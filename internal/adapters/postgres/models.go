package postgres

import "time"

type userModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	Email          string     `gorm:"column:email"`
	Username       string     `gorm:"column:username"`
	HashedPassword string     `gorm:"column:hashed_password"`
	FullName       *string    `gorm:"column:full_name"`
	FirstName      *string    `gorm:"column:first_name"`
	LastName       *string    `gorm:"column:last_name"`
	Phone          *string    `gorm:"column:phone"`
	AddressLine1   *string    `gorm:"column:address_line1"`
	AddressLine2   *string    `gorm:"column:address_line2"`
	City           *string    `gorm:"column:city"`
	State          *string    `gorm:"column:state"`
	PostalCode     *string    `gorm:"column:postal_code"`
	Country        *string    `gorm:"column:country"`
	IsActive       bool       `gorm:"column:is_active"`
	IsVerified     bool       `gorm:"column:is_verified"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      *time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type campaignModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	Title         string     `gorm:"column:title"`
	Description   *string    `gorm:"column:description"`
	CampaignType  string     `gorm:"column:campaign_type"`
	GoalAmount    *float64   `gorm:"column:goal_amount"`
	CurrentAmount float64    `gorm:"column:current_amount"`
	Currency      string     `gorm:"column:currency"`
	Status        string     `gorm:"column:status"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
	ImageURL      *string    `gorm:"column:image_url"`
	CreatorID     int64      `gorm:"column:creator_id"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string { return "campaigns" }

type giverProfileModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	UserID        int64      `gorm:"column:user_id"`
	ProfileType   string     `gorm:"column:profile_type"`
	CompanyName   *string    `gorm:"column:company_name"`
	Bio           *string    `gorm:"column:bio"`
	WebsiteURL    *string    `gorm:"column:website_url"`
	TotalDonated  float64    `gorm:"column:total_donated"`
	DonationCount int        `gorm:"column:donation_count"`
	IsPublic      bool       `gorm:"column:is_public"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at"`
}

func (giverProfileModel) TableName() string { return "giver_profiles" }

type donationModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Amount          float64    `gorm:"column:amount"`
	Currency        string     `gorm:"column:currency"`
	CampaignID      int64      `gorm:"column:campaign_id"`
	GiverID         int64      `gorm:"column:giver_id"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	PaymentIntentID *string    `gorm:"column:payment_intent_id"`
	IsAnonymous     bool       `gorm:"column:is_anonymous"`
	Message         *string    `gorm:"column:message"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at"`
}

func (donationModel) TableName() string { return "donations" }

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;type:uuid;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      string     `gorm:"column:payload;type:jsonb"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
	RetryCount   int        `gorm:"column:retry_count"`
	LastError    *string    `gorm:"column:last_error"`
	LastErrorAt  *time.Time `gorm:"column:last_error_at"`
}

func (outboxModel) TableName() string { return "event_outbox" }
