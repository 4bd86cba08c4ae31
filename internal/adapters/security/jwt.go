package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/givehub/givehub/internal/domain"
)

// JWTIssuer implements HS256 token signing/validation for bearer sessions.
// Tokens are self-contained: subject, issued-at, and expiry are embedded and
// verified against the server-held secret, so validation needs no store.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	nowFn  func() time.Time
}

// NewJWTIssuer builds an issuer from the configured signing secret and TTL.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is required")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *JWTIssuer) Issue(subject string) (string, error) {
	now := s.nowFn()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry and returns the embedded
// subject. Rejection reasons stay distinguishable for diagnostics even
// though the HTTP layer collapses them into one unauthorized response.
func (s *JWTIssuer) Validate(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.nowFn))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenBadSignature
		default:
			return "", domain.ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return claims.Subject, nil
}
