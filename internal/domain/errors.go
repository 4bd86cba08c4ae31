package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// Resource-specific misses wrap ErrNotFound so adapters can name the
	// missing resource while generic errors.Is checks keep working.
	ErrCampaignNotFound     = fmt.Errorf("%w: campaign", ErrNotFound)
	ErrGiverProfileNotFound = fmt.Errorf("%w: giver profile", ErrNotFound)
	ErrDonationNotFound     = fmt.Errorf("%w: donation", ErrNotFound)
	// ErrInvalidCredentials hides whether the username or the password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	// Registration duplicates stay field-specific so the response can name
	// the conflicting field, matching the platform's public contract.
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
	// ErrAccountInactive signals a soft-deleted or suspended account.
	ErrAccountInactive = errors.New("account inactive")

	// Token rejection reasons. Externally they all collapse into the same
	// unauthorized outcome; internally they stay distinguishable for diagnostics.
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")

	// ErrCredentialStore marks a corrupt or malformed stored password hash.
	// This is a server-side fault, never a normal verification miss.
	ErrCredentialStore = errors.New("credential store failure")
	// ErrPasswordMismatch is the normal "wrong password" verification outcome.
	ErrPasswordMismatch = errors.New("password does not match")
)

// ValidationError carries every violated field rule so the caller can report
// all problems at once instead of fixing them one round-trip at a time.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from non-empty messages.
func NewValidationError(messages ...string) *ValidationError {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			out = append(out, m)
		}
	}
	return &ValidationError{Messages: out}
}

// RateLimitError reports quota exhaustion together with the time remaining
// until the fixed window resets, so the HTTP layer can emit Retry-After.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}
