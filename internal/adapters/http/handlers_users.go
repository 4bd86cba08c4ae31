package http

import (
	"errors"
	"net/http"

	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/domain"
)

func (h *Handler) usersMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(r.Context(), w, "users_me", http.StatusUnauthorized, "Could not validate credentials", nil)
		return
	}
	writeJSON(w, http.StatusOK, application.NewUserResponse(user))
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	const op = "update_me"

	user, _ := userFromContext(r.Context())
	var req application.UserUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	updated, err := h.service.UpdateMe(r.Context(), user.ID, req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeDetail(r.Context(), w, op, http.StatusBadRequest, "Email already in use", err)
			return
		}
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) myStats(w http.ResponseWriter, r *http.Request) {
	const op = "my_stats"

	user, _ := userFromContext(r.Context())
	stats, err := h.service.MyStats(r.Context(), user.ID)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
