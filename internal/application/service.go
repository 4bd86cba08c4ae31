package application

import (
	"time"

	"github.com/givehub/givehub/internal/ports"
)

// Service implements every use case of the platform: authentication,
// campaigns, giver profiles, donations, and user account management.
// All persistence and security concerns come in through ports.
type Service struct {
	cfg       Config
	users     ports.UserRepository
	campaigns ports.CampaignRepository
	givers    ports.GiverRepository
	donations ports.DonationRepository
	windows   ports.RateWindowStore
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	nowFn     func() time.Time
}

type Dependencies struct {
	Config    Config
	Users     ports.UserRepository
	Campaigns ports.CampaignRepository
	Givers    ports.GiverRepository
	Donations ports.DonationRepository
	Windows   ports.RateWindowStore
	Hasher    ports.PasswordHasher
	Tokens    ports.TokenIssuer
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	if cfg.RegisterQuota <= 0 {
		cfg.RegisterQuota = 5
	}
	if cfg.RegisterWindow <= 0 {
		cfg.RegisterWindow = time.Hour
	}
	if cfg.LoginQuota <= 0 {
		cfg.LoginQuota = 10
	}
	if cfg.LoginWindow <= 0 {
		cfg.LoginWindow = time.Minute
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "GBP"
	}
	return &Service{
		cfg:       cfg,
		users:     deps.Users,
		campaigns: deps.Campaigns,
		givers:    deps.Givers,
		donations: deps.Donations,
		windows:   deps.Windows,
		hasher:    deps.Hasher,
		tokens:    deps.Tokens,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}
