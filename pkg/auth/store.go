package auth

import (
	"context"
	"sync"
)

// TokenStore tracks the set of currently valid bearer tokens. A token is
// either present (valid) or absent (invalid); there is no expiry and no
// per-token metadata.
type TokenStore interface {
	// Issue generates a fresh token, marks it valid, and returns it.
	Issue(ctx context.Context) (string, error)

	// Revoke invalidates a token. Revoking an unknown or already revoked
	// token is a silent no-op.
	Revoke(ctx context.Context, token string) error

	// IsValid reports whether the token currently grants access.
	IsValid(ctx context.Context, token string) (bool, error)
}

// MemoryTokenStore keeps valid tokens in a process-wide set. Tokens do not
// survive a restart, and separate instances do not share state: a token
// issued by one process is unknown to another. Deployments running more
// than one instance should use RedisTokenStore instead.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

var _ TokenStore = (*MemoryTokenStore)(nil)

func (s *MemoryTokenStore) Issue(ctx context.Context) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	_, ok := s.tokens[token]
	s.mu.Unlock()
	return ok, nil
}
