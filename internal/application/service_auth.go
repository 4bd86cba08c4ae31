package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/givehub/givehub/internal/domain"
	"github.com/givehub/givehub/internal/ports"
)

// Register creates a user account plus its default giver profile. Every
// validation failure is collected before returning so the caller sees the
// full list, not just the first miss.
func (s *Service) Register(ctx context.Context, req RegisterRequest, clientKey string) (UserResponse, error) {
	if err := s.checkWindow(ctx, bucketRegister, clientKey, s.cfg.RegisterQuota, s.cfg.RegisterWindow); err != nil {
		return UserResponse{}, err
	}

	var messages []string
	if err := domain.ValidateUsername(req.Username); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			messages = append(messages, verr.Messages...)
		} else {
			return UserResponse{}, err
		}
	}
	if result := domain.ValidatePassword(req.Password); !result.Accepted() {
		messages = append(messages, result.Messages()...)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		messages = append(messages, "Invalid email address")
	}
	if len(messages) > 0 {
		return UserResponse{}, domain.NewValidationError(messages...)
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return UserResponse{}, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return UserResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return UserResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFn()
	payload, _ := json.Marshal(map[string]any{
		"username":      req.Username,
		"email":         email,
		"registered_at": now,
	})
	user, err := s.users.CreateWithProfileTx(ctx, ports.CreateUserParams{
		Email:          email,
		Username:       req.Username,
		HashedPassword: hashed,
		FullName:       stringDeref(req.FullName),
		RegisteredAt:   now,
	}, ports.OutboxEvent{
		EventID:      uuid.NewString(),
		EventType:    "user.registered",
		PartitionKey: req.Username,
		Payload:      payload,
		OccurredAt:   now,
	})
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// Login verifies credentials and issues a bearer token. The caller can
// present either a username or an email in the username field; both the
// unknown-account and wrong-password outcomes collapse into the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest, clientKey string) (TokenResponse, error) {
	if err := s.checkWindow(ctx, bucketLogin, clientKey, s.cfg.LoginQuota, s.cfg.LoginWindow); err != nil {
		return TokenResponse{}, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return TokenResponse{}, domain.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	if err := s.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			return TokenResponse{}, domain.ErrInvalidCredentials
		}
		return TokenResponse{}, err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("issue token: %w", err)
	}
	return TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a bearer token into the active account behind it.
// Any token rejection reason collapses into ErrUnauthorized; only a valid
// token over an inactive account surfaces ErrAccountInactive.
func (s *Service) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, domain.ErrAccountInactive
	}
	return user, nil
}

func stringDeref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
