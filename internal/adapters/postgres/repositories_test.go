package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/givehub/givehub/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "duplicate key code",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"},
			want: true,
		},
		{
			name: "wrapped duplicate key",
			err:  fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "other constraint class",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_donations_campaign"},
			want: false,
		},
		{
			name: "non driver error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("isUniqueViolation = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUniqueViolationErrorMapsConstraintToField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"},
			want: domain.ErrUsernameTaken,
		},
		{
			name: "email constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"},
			want: domain.ErrEmailTaken,
		},
		{
			name: "wrapped email constraint",
			err:  fmt.Errorf("update user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}),
			want: domain.ErrEmailTaken,
		},
		{
			name: "unrecognized constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_giver_profiles_user"},
			want: domain.ErrConflict,
		},
		{
			name: "constraint detail lost",
			err:  errors.New("duplicate key value violates unique constraint"),
			want: domain.ErrConflict,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := uniqueViolationError(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("uniqueViolationError = %v, want %v", got, tc.want)
			}
		})
	}
}
