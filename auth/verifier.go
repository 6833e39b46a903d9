// Package auth verifies bearer tokens against the identity provider.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what a verified token resolves to.
type Identity struct {
	UID   string
	Email string
}

// Verifier checks a raw bearer token and returns the caller's identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
