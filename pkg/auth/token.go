// Package auth issues and validates the opaque bearer tokens that gate the
// admin listing endpoints.
package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes is the entropy width of a bearer token. 16 random bytes make
// collisions with currently valid tokens practically impossible, so Issue
// never checks for one.
const tokenBytes = 16

// GenerateToken returns a new opaque bearer token: tokenBytes of
// cryptographically random data, hex-encoded.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
