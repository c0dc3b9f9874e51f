package service

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned on any login mismatch. It deliberately
// carries no detail about which credential was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles administrator login and logout.
type AuthService interface {
	// Login validates the credentials against the configured administrator
	// identity and returns a fresh bearer token on success. The email
	// comparison is case-insensitive; the password comparison is not.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout revokes a token. Revoking an unknown token succeeds silently.
	Logout(ctx context.Context, token string) error
}
