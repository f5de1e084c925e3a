package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rendyak/karirku/internal/entities"
)

var ErrInvalidCredentials = errors.New("id card number or password incorrect")

type userRepository interface {
	GetByCredentials(ctx context.Context, idCardNumber, password string) (*entities.User, error)
}

// Auth issues session tokens against the seeded user table. Tokens are a
// deterministic 8-hex-char digest of the id card number followed by 24 random
// hex chars, so the token-prefix resolver maps every session of a user to the
// same identity.
type Auth struct {
	users userRepository
}

func NewAuthService(users userRepository) (*Auth, error) {
	if users == nil {
		return nil, errors.New("users repository is nil")
	}
	return &Auth{users: users}, nil
}

func (a *Auth) Login(ctx context.Context, idCardNumber, password string) (*entities.User, string, error) {
	user, err := a.users.GetByCredentials(ctx, idCardNumber, password)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := newToken(idCardNumber)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout only checks the token shape; there is no server-side session to
// invalidate.
func (a *Auth) Logout(_ context.Context, token string) error {
	if token == "" {
		return entities.ErrUnauthenticated
	}
	return nil
}

// userDigest is the rolling 31x+c hash over the id card number, truncated to
// 32 bits and rendered as 8 hex chars.
func userDigest(idCardNumber string) string {
	var hash int32
	for _, c := range idCardNumber {
		hash = hash*31 + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return fmt.Sprintf("%08x", uint32(hash))
}

func newToken(idCardNumber string) (string, error) {
	suffix := make([]byte, (tokenLength-userIDPrefixSize)/2)
	if _, err := rand.Read(suffix); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}
	return userDigest(idCardNumber) + hex.EncodeToString(suffix), nil
}
