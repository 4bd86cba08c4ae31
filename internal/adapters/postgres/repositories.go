package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

// Repositories bundles all Postgres-backed repository implementations
// behind the port interfaces the application layer consumes.
type Repositories struct {
	Users     ports.UserRepository
	Campaigns ports.CampaignRepository
	Givers    ports.GiverRepository
	Donations ports.DonationRepository
	Outbox    ports.OutboxRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     &userRepository{db: db},
		Campaigns: &campaignRepository{db: db},
		Givers:    &giverRepository{db: db},
		Donations: &donationRepository{db: db},
		Outbox:    &outboxRepository{db: db},
	}
}

// pgUniqueViolation is the Postgres SQLSTATE for a duplicate key.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// uniqueViolationError maps a users-table unique violation to the
// field-specific sentinel by constraint name. The losing side of a
// registration race gets the same answer a pre-insert duplicate check
// would have given.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return domain.ErrUsernameTaken
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return domain.ErrEmailTaken
		}
	}
	return domain.ErrConflict
}
