package ports

import (
	"context"
	"time"

	"github.com/givehub/givehub/internal/domain"
)

// CreateUserParams captures the inputs for atomic user creation. The giver
// profile and the registration outbox event are written in the same
// transaction so a user never exists without either.
type CreateUserParams struct {
	Email          string
	Username       string
	HashedPassword string
	FullName       string
	RegisteredAt   time.Time
}

// UserRepository defines persistence operations for user accounts.
// Uniqueness races between concurrent registrations are resolved by the
// store's constraints and surfaced as domain.ErrConflict.
type UserRepository interface {
	CreateWithProfileTx(ctx context.Context, params CreateUserParams, event OutboxEvent) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID int64) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Status       domain.CampaignStatus
	CampaignType domain.CampaignType
	CreatorID    int64
	Limit        int
	Offset       int
}

// CampaignRepository manages campaign records.
type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetByID(ctx context.Context, campaignID int64) (domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, int64, error)
	Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
}

// GiverRepository manages giver profiles and the public leaderboard read.
type GiverRepository interface {
	Create(ctx context.Context, profile domain.GiverProfile) (domain.GiverProfile, error)
	GetByUserID(ctx context.Context, userID int64) (domain.GiverProfile, error)
	Update(ctx context.Context, profile domain.GiverProfile) (domain.GiverProfile, error)
	TopPublicGivers(ctx context.Context, profileType domain.ProfileType, limit int) ([]LeaderboardRow, error)
}

// LeaderboardRow joins a public giver profile with its account identity.
type LeaderboardRow struct {
	Profile  domain.GiverProfile
	Username string
	FullName string
}

// DonationFilter narrows donation listings. CompletedOnly and PublicOnly
// exist for the public per-campaign and per-giver views.
type DonationFilter struct {
	CampaignID    int64
	GiverID       int64
	CompletedOnly bool
	PublicOnly    bool
	Limit         int
	Offset        int
}

// DonationRepository manages donation records. CompleteTx applies the
// status change and the campaign/giver aggregate updates atomically.
type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	GetByID(ctx context.Context, donationID int64) (domain.Donation, error)
	List(ctx context.Context, filter DonationFilter) ([]domain.Donation, int64, float64, error)
	UpdateStatus(ctx context.Context, donationID int64, status domain.PaymentStatus, paymentIntentID string, at time.Time) (domain.Donation, error)
	CompleteTx(ctx context.Context, donationID int64, paymentIntentID string, at time.Time, event OutboxEvent) (domain.Donation, error)
}

// OutboxEvent is the write-side event payload prior to storage.
// It is adapter-neutral to keep application code independent of broker specifics.
type OutboxEvent struct {
	EventID      string
	EventType    string
	PartitionKey string
	Payload      []byte
	OccurredAt   time.Time
}

// OutboxRecord represents durable outbox state, including retry metadata.
type OutboxRecord struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	RetryCount   int
	LastError    *string
	CreatedAt    time.Time
	PublishedAt  *time.Time
}

// OutboxRepository controls the publish-retry workflow for domain events.
// Rows are written only inside the transactional ports above; the relay
// worker owns this read-and-mark side.
type OutboxRepository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxRecord, error)
	MarkPublished(ctx context.Context, outboxID string, at time.Time) error
	MarkFailed(ctx context.Context, outboxID string, errMsg string, at time.Time) error
}
