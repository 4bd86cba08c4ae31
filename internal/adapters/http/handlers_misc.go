package http

import "net/http"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Fundraiser Platform API",
		"docs":    "/docs",
		"version": "0.1.0",
	})
}

// health reports process liveness plus database reachability. A broken
// database still answers 200 so load balancers can read the body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pingDB == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "not configured",
		})
		return
	}
	if err := h.pingDB(r.Context()); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

func (h *Handler) usersCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UsersCount(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, "users_count", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
