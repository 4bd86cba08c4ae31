package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain"
)

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	const op = "create_campaign"

	user, _ := userFromContext(r.Context())
	var req application.CampaignCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), user.ID, req)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	const op = "list_campaigns"

	page, pageSize := pageParams(r)
	query := application.CampaignListQuery{
		Status:       strings.TrimSpace(r.URL.Query().Get("status")),
		CampaignType: strings.TrimSpace(r.URL.Query().Get("campaign_type")),
		Page:         page,
		PageSize:     pageSize,
	}

	result, err := h.service.ListCampaigns(r.Context(), query)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	const op = "get_campaign"

	campaignID, ok := pathInt64(r, "campaign_id")
	if !ok {
		writePathError(r.Context(), w, op, "campaign_id")
		return
	}

	campaign, err := h.service.GetCampaign(r.Context(), campaignID)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	const op = "update_campaign"

	user, _ := userFromContext(r.Context())
	campaignID, ok := pathInt64(r, "campaign_id")
	if !ok {
		writePathError(r.Context(), w, op, "campaign_id")
		return
	}

	var req application.CampaignUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	campaign, err := h.service.UpdateCampaign(r.Context(), user.ID, campaignID, req)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeDetail(r.Context(), w, op, http.StatusForbidden, "You can only update your own campaigns", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	const op = "delete_campaign"

	user, _ := userFromContext(r.Context())
	campaignID, ok := pathInt64(r, "campaign_id")
	if !ok {
		writePathError(r.Context(), w, op, "campaign_id")
		return
	}

	if err := h.service.DeleteCampaign(r.Context(), user.ID, campaignID); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeDetail(r.Context(), w, op, http.StatusForbidden, "You can only delete your own campaigns", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) myCampaigns(w http.ResponseWriter, r *http.Request) {
	const op = "my_campaigns"

	user, _ := userFromContext(r.Context())
	page, pageSize := pageParams(r)

	result, err := h.service.MyCampaigns(r.Context(), user.ID, page, pageSize)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
