package http

import (
	"net/http"

	"github.com/givehub/givehub/internal/application"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	const op = "register"

	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(r.Context(), w, op, err)
		return
	}

	user, err := h.service.Register(r.Context(), req, readIP(r))
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// login accepts the OAuth2 password form: urlencoded username + password.
// The username field also accepts an email address.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "login"

	if err := r.ParseForm(); err != nil {
		writeDetail(r.Context(), w, op, http.StatusBadRequest, "Invalid form data", err)
		return
	}
	req := application.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	token, err := h.service.Login(r.Context(), req, readIP(r))
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (h *Handler) authMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(r.Context(), w, "auth_me", http.StatusUnauthorized, "Could not validate credentials", nil)
		return
	}
	writeJSON(w, http.StatusOK, application.NewUserResponse(user))
}

// logout is stateless. Tokens expire on their own; the client is expected
// to discard its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Successfully logged out. Please remove the token from your client.",
	})
}
