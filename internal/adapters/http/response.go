package http

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/givehub/givehub/internal/domain"
)

// errorBody is the uniform error envelope. Detail is a plain string for
// single failures and a list of strings for field validation.
type errorBody struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDetail emits an error envelope with a handler-chosen message.
func writeDetail(ctx context.Context, w http.ResponseWriter, operation string, statusCode int, detail string, err error) {
	logHTTPOperationError(ctx, operation, statusCode, detail, err)
	writeJSON(w, statusCode, errorBody{Detail: detail})
}

// writeDomainError maps an application error to its HTTP shape. Handlers
// that need a route-specific message intercept the sentinel before
// falling through to this mapping.
func writeDomainError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		logHTTPOperationError(ctx, operation, http.StatusUnprocessableEntity, verr.Error(), err)
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: verr.Messages})
		return
	}

	var rerr *domain.RateLimitError
	if errors.As(err, &rerr) {
		seconds := int(math.Ceil(rerr.RetryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		writeDetail(ctx, w, operation, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", err)
		return
	}

	status, detail := mapDomainError(err)
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeDetail(ctx, w, operation, status, detail, err)
}

func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect username or password"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusForbidden, "User account is inactive"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Not authorized"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrCampaignNotFound):
		return http.StatusNotFound, "Campaign not found"
	case errors.Is(err, domain.ErrGiverProfileNotFound):
		return http.StatusNotFound, "Giver profile not found"
	case errors.Is(err, domain.ErrDonationNotFound):
		return http.StatusNotFound, "Donation not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, "Request conflicts with the current state"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputDetail(err)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func invalidInputDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	if msg == "" || msg == domain.ErrInvalidInput.Error() {
		return "Invalid request"
	}
	return msg
}
