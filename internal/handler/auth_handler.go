package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starke/backend/internal/service"
	"github.com/starke/backend/pkg/auth"
)

// AuthHandler handles administrator login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest is the expected JSON body for POST /api/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login. A malformed body is treated as empty
// credentials and fails the same way wrong ones do.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout handles POST /api/logout. It succeeds unconditionally, even when
// the token is unknown or the header is absent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := auth.BearerToken(r); token != "" {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			// Logout is best-effort toward the store but the client is
			// logged out either way.
			slog.Error("token revoke failed", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
