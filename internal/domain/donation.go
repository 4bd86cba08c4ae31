package domain

import "time"

// PaymentStatus is the payment lifecycle of a donation.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Donation is a single contribution from a giver profile to a campaign.
// Aggregates on the campaign and giver side are only advanced when the
// payment transitions into completed.
type Donation struct {
	ID              int64
	Amount          float64
	Currency        string
	CampaignID      int64
	GiverID         int64
	PaymentStatus   PaymentStatus
	PaymentIntentID string
	IsAnonymous     bool
	Message         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
