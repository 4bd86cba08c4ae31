package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain"
)

func (h *Handler) createDonation(w http.ResponseWriter, r *http.Request) {
	const op = "create_donation"

	user, _ := userFromContext(r.Context())
	var req application.DonationCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	donation, err := h.service.CreateDonation(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGiverProfileNotFound):
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Giver profile not found. This should have been auto-created.", err)
		case errors.Is(err, domain.ErrInvalidInput) && strings.Contains(err.Error(), "not accepting donations"):
			writeDetail(r.Context(), w, op, http.StatusBadRequest, "Campaign is not accepting donations (status must be ACTIVE)", err)
		default:
			writeDomainError(r.Context(), w, op, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, donation)
}

func (h *Handler) campaignDonations(w http.ResponseWriter, r *http.Request) {
	const op = "campaign_donations"

	campaignID, ok := pathInt64(r, "campaign_id")
	if !ok {
		writePathError(r.Context(), w, op, "campaign_id")
		return
	}
	page, pageSize := pageParams(r)
	includeAnonymous := queryBool(r, "include_anonymous")

	result, err := h.service.CampaignDonations(r.Context(), campaignID, includeAnonymous, page, pageSize)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getDonation(w http.ResponseWriter, r *http.Request) {
	const op = "get_donation"

	user, _ := userFromContext(r.Context())
	donationID, ok := pathInt64(r, "donation_id")
	if !ok {
		writePathError(r.Context(), w, op, "donation_id")
		return
	}

	donation, err := h.service.GetDonation(r.Context(), user.ID, donationID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeDetail(r.Context(), w, op, http.StatusForbidden, "Not authorized to view this donation", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, donation)
}

// updateDonationStatus reads the new status from query parameters, not the
// body, mirroring the payment-callback integration contract.
func (h *Handler) updateDonationStatus(w http.ResponseWriter, r *http.Request) {
	const op = "update_donation_status"

	user, _ := userFromContext(r.Context())
	donationID, ok := pathInt64(r, "donation_id")
	if !ok {
		writePathError(r.Context(), w, op, "donation_id")
		return
	}
	status := strings.TrimSpace(r.URL.Query().Get("payment_status"))
	paymentIntentID := strings.TrimSpace(r.URL.Query().Get("payment_intent_id"))

	donation, err := h.service.UpdateDonationStatus(r.Context(), user.ID, donationID, status, paymentIntentID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeDetail(r.Context(), w, op, http.StatusForbidden, "Not authorized to update this donation", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, donation)
}

func (h *Handler) myDonations(w http.ResponseWriter, r *http.Request) {
	const op = "my_donations"

	user, _ := userFromContext(r.Context())
	page, pageSize := pageParams(r)

	result, err := h.service.MyDonations(r.Context(), user.ID, page, pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrGiverProfileNotFound) {
			writeDetail(r.Context(), w, op, http.StatusNotFound, "Giver profile not found", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
