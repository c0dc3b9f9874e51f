package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an Authorization: Bearer header.
// It returns "" when the header is absent or uses another scheme.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
}

// RequireToken is middleware that rejects requests whose bearer token is
// missing or not currently valid. Handlers behind it never run for
// unauthenticated callers, so no storage is touched on rejection.
func RequireToken(store TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			valid, err := store.IsValid(r.Context(), token)
			if err != nil {
				slog.Error("token validation failed", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}
			if !valid {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
