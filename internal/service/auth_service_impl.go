package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starke/backend/pkg/auth"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	tokens        auth.TokenStore
	adminEmail    string
	adminPassword string
}

// NewAuthService creates an AuthService that issues tokens from the given
// store for the single configured administrator identity.
func NewAuthService(tokens auth.TokenStore, adminEmail, adminPassword string) AuthService {
	return &authServiceImpl{
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	// Evaluate both comparisons before branching so a mismatch reveals
	// nothing about which field was wrong.
	emailOK := strings.EqualFold(email, s.adminEmail)
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOK || !passwordOK {
		slog.Info("login rejected", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx)
	if err != nil {
		slog.Error("token issue failed", "error", err)
		return "", fmt.Errorf("issue token: %w", err)
	}
	slog.Info("admin login", "token_prefix", token[:8])
	return token, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
