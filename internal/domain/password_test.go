package domain_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/givehub/givehub/internal/domain"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		password     string
		wantViolated []domain.PasswordRule
	}{
		{name: "valid", password: "SecurePass123", wantViolated: nil},
		{
			name:         "too short",
			password:     "Ab1",
			wantViolated: []domain.PasswordRule{domain.RuleMinLength},
		},
		{
			name:         "no uppercase",
			password:     "securepass123",
			wantViolated: []domain.PasswordRule{domain.RuleUppercase},
		},
		{
			name:         "no lowercase",
			password:     "SECUREPASS123",
			wantViolated: []domain.PasswordRule{domain.RuleLowercase},
		},
		{
			name:         "no digit",
			password:     "SecurePassword",
			wantViolated: []domain.PasswordRule{domain.RuleDigit},
		},
		{
			name:     "common password despite character classes",
			password: "Password123",
			wantViolated: []domain.PasswordRule{
				domain.RuleCommonPassword,
			},
		},
		{
			name:     "every rule violated",
			password: "ab",
			wantViolated: []domain.PasswordRule{
				domain.RuleMinLength,
				domain.RuleUppercase,
				domain.RuleDigit,
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := domain.ValidatePassword(tc.password)
			if !reflect.DeepEqual(result.Violated, tc.wantViolated) {
				t.Fatalf("violated rules = %v, want %v", result.Violated, tc.wantViolated)
			}
			if result.Accepted() != (len(tc.wantViolated) == 0) {
				t.Fatalf("Accepted() = %v inconsistent with violations %v", result.Accepted(), result.Violated)
			}
			if len(result.Messages()) != len(result.Violated) {
				t.Fatalf("expected one message per violated rule, got %v", result.Messages())
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		username  string
		wantError bool
	}{
		{name: "valid", username: "john_doe42"},
		{name: "minimum length", username: "abc"},
		{name: "too short", username: "ab", wantError: true},
		{name: "too long", username: strings.Repeat("a", 51), wantError: true},
		{name: "leading digit", username: "1john", wantError: true},
		{name: "leading underscore", username: "_john", wantError: true},
		{name: "illegal character", username: "john.doe", wantError: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := domain.ValidateUsername(tc.username)
			if tc.wantError && err == nil {
				t.Fatalf("expected error for %q, got nil", tc.username)
			}
			if !tc.wantError && err != nil {
				t.Fatalf("expected nil error for %q, got %v", tc.username, err)
			}
		})
	}
}

func TestValidationErrorCarriesAllMessages(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("first", "", "second")
	if got := len(err.Messages); got != 2 {
		t.Fatalf("expected empty messages dropped, got %d messages", got)
	}
	if err.Error() != "first; second" {
		t.Fatalf("unexpected joined message: %q", err.Error())
	}
}

func TestResourceNotFoundSentinelsWrapNotFound(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		domain.ErrCampaignNotFound,
		domain.ErrGiverProfileNotFound,
		domain.ErrDonationNotFound,
	} {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("%v should wrap ErrNotFound", err)
		}
	}
}
