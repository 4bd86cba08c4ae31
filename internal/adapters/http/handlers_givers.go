package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain"
)

// The giver profile endpoints answer a missing profile with wording that
// matches the caller's situation: own-profile reads suggest creating one,
// public reads stay neutral.

func (h *Handler) myGiverProfileShorthand(w http.ResponseWriter, r *http.Request) {
	h.serveMyGiverProfile(w, r, "my_giver_profile_shorthand")
}

func (h *Handler) myGiverProfile(w http.ResponseWriter, r *http.Request) {
	h.serveMyGiverProfile(w, r, "my_giver_profile")
}

func (h *Handler) serveMyGiverProfile(w http.ResponseWriter, r *http.Request, op string) {
	user, _ := userFromContext(r.Context())
	profile, err := h.service.MyGiverProfile(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrGiverProfileNotFound) {
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Giver profile not found. Create one first.", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) createGiverProfile(w http.ResponseWriter, r *http.Request) {
	const op = "create_giver_profile"

	user, _ := userFromContext(r.Context())
	var req application.GiverProfileCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	profile, err := h.service.CreateGiverProfile(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeDetail(r.Context(), w, op, http.StatusBadRequest, "User already has a giver profile", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) updateGiverProfile(w http.ResponseWriter, r *http.Request) {
	const op = "update_giver_profile"

	user, _ := userFromContext(r.Context())
	var req application.GiverProfileUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	profile, err := h.service.UpdateGiverProfile(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, domain.ErrGiverProfileNotFound) {
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Giver profile not found. Create one first.", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) publicGiverProfile(w http.ResponseWriter, r *http.Request) {
	const op = "public_giver_profile"

	userID, ok := pathInt64(r, "user_id")
	if !ok {
		writePathError(r.Context(), w, op, "user_id")
		return
	}

	profile, err := h.service.PublicGiverProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrGiverProfileNotFound) {
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Public giver profile not found", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) myGiverDonationsShorthand(w http.ResponseWriter, r *http.Request) {
	const op = "my_giver_donations_shorthand"

	user, _ := userFromContext(r.Context())
	page, pageSize := flexiblePageParams(r)

	result, err := h.service.MyDonationHistory(r.Context(), user.ID, page, pageSize)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) myGiverDonations(w http.ResponseWriter, r *http.Request) {
	const op = "my_giver_donations"

	user, _ := userFromContext(r.Context())
	page, pageSize := pageParams(r)

	result, err := h.service.MyDonationHistory(r.Context(), user.ID, page, pageSize)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) publicGiverDonations(w http.ResponseWriter, r *http.Request) {
	const op = "public_giver_donations"

	userID, ok := pathInt64(r, "user_id")
	if !ok {
		writePathError(r.Context(), w, op, "user_id")
		return
	}
	page, pageSize := pageParams(r)

	result, err := h.service.PublicDonationHistory(r.Context(), userID, page, pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrGiverProfileNotFound) {
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Public giver profile not found", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "leaderboard"

	limit := queryInt(r, "limit", 10)
	profileType := strings.TrimSpace(r.URL.Query().Get("profile_type"))

	result, err := h.service.Leaderboard(r.Context(), profileType, limit)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
