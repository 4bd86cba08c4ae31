package domain

import "time"

// ProfileType distinguishes individual donors from corporate ones.
type ProfileType string

const (
	ProfileIndividual ProfileType = "individual"
	ProfileCompany    ProfileType = "company"
)

// ValidProfileType reports whether t is a supported profile type.
func ValidProfileType(t ProfileType) bool {
	return t == ProfileIndividual || t == ProfileCompany
}

// GiverProfile tracks a user's giving activity and public-facing donor
// identity. One-to-one with the user; auto-created at registration.
type GiverProfile struct {
	ID            int64
	UserID        int64
	ProfileType   ProfileType
	CompanyName   string
	Bio           string
	WebsiteURL    string
	TotalDonated  float64
	DonationCount int
	IsPublic      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
