package services

import (
	"context"
	"testing"

	"github.com/rendyak/karirku/internal/entities"
	"github.com/stretchr/testify/assert"
)

type mockUsers struct {
	user *entities.User
}

func (m *mockUsers) GetByCredentials(_ context.Context, idCardNumber, password string) (*entities.User, error) {
	if m.user != nil && m.user.IDCardNumber == idCardNumber && m.user.Password == password {
		return m.user, nil
	}
	return nil, nil
}

var testUser = &entities.User{
	IDCardNumber: "1234567890123456",
	Password:     "password123",
	Name:         "Doni Rianto",
}

func Test_Login_IssuesResolvableToken(t *testing.T) {

	auth, err := NewAuthService(&mockUsers{user: testUser})
	assert.NoError(t, err)

	user, token, err := auth.Login(context.Background(), testUser.IDCardNumber, testUser.Password)
	assert.NoError(t, err)
	assert.Equal(t, testUser.Name, user.Name)
	assert.Len(t, token, tokenLength)

	// the token prefix is the user digest, so every session of this user
	// resolves to the same identity
	userID, err := TokenPrefixResolver{}.Resolve(token)
	assert.NoError(t, err)
	assert.Equal(t, userDigest(testUser.IDCardNumber), userID)

	_, second, err := auth.Login(context.Background(), testUser.IDCardNumber, testUser.Password)
	assert.NoError(t, err)
	assert.NotEqual(t, token, second)
	assert.Equal(t, token[:userIDPrefixSize], second[:userIDPrefixSize])
}

func Test_Login_RejectsUnknownCredentials(t *testing.T) {

	auth, err := NewAuthService(&mockUsers{user: testUser})
	assert.NoError(t, err)

	_, _, err = auth.Login(context.Background(), testUser.IDCardNumber, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func Test_Logout(t *testing.T) {

	auth, err := NewAuthService(&mockUsers{user: testUser})
	assert.NoError(t, err)

	assert.ErrorIs(t, auth.Logout(context.Background(), ""), entities.ErrUnauthenticated)
	assert.NoError(t, auth.Logout(context.Background(), "any-token"))
}

func Test_UserDigest_IsDeterministicHex(t *testing.T) {

	digest := userDigest("1234567890123456")
	assert.Len(t, digest, userIDPrefixSize)
	assert.Equal(t, digest, userDigest("1234567890123456"))
	assert.NotEqual(t, digest, userDigest("9876543210987654"))
}
