package services

import "github.com/rendyak/karirku/internal/entities"

const (
	tokenLength      = 32
	userIDPrefixSize = 8
)

// IdentityResolver turns an opaque session token into a stable user id. Kept
// as a narrow interface so a real credential system can replace the default
// without touching the workflow.
type IdentityResolver interface {
	Resolve(token string) (string, error)
}

// TokenPrefixResolver accepts any 32-character token and derives the user id
// from its first 8 characters. This is a placeholder, not authentication:
// there is no signature check, and two tokens sharing a prefix collide
// silently. Do not mistake it for a security boundary.
type TokenPrefixResolver struct{}

func (TokenPrefixResolver) Resolve(token string) (string, error) {
	if len(token) != tokenLength {
		return "", entities.ErrUnauthenticated
	}
	return token[:userIDPrefixSize], nil
}
