package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/givehub/givehub/internal/domain"
)

// BcryptHasher implements password hashing via bcrypt.
// Cost is configurable so security/performance can be tuned by environment.
// bcrypt salts each call, so two hashes of the same password differ and only
// Compare is authoritative for equality.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-based hasher with default fallback cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCredentialStore, err)
	}
	return string(hashed), nil
}

// Compare distinguishes a normal mismatch from a corrupt stored hash: the
// former is an expected verification outcome, the latter a server fault.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrPasswordMismatch
	}
	return fmt.Errorf("%w: %v", domain.ErrCredentialStore, err)
}
