package services

import (
	"strings"
	"testing"

	"github.com/rendyak/karirku/internal/entities"
	"github.com/stretchr/testify/assert"
)

func Test_TokenPrefixResolver_DerivesStableIdentity(t *testing.T) {

	resolver := TokenPrefixResolver{}
	token := "abcd1234" + strings.Repeat("0", 24)

	userID, err := resolver.Resolve(token)
	assert.NoError(t, err)
	assert.Equal(t, "abcd1234", userID)

	again, err := resolver.Resolve(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, again)
}

func Test_TokenPrefixResolver_RejectsMalformedTokens(t *testing.T) {

	resolver := TokenPrefixResolver{}

	for _, token := range []string{"", "short", strings.Repeat("a", 31), strings.Repeat("a", 33)} {
		_, err := resolver.Resolve(token)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated, "token %q", token)
	}
}

func Test_TokenPrefixResolver_PrefixCollisionIsSilent(t *testing.T) {

	// documented weakness of the placeholder: distinct tokens sharing a
	// prefix map to the same user
	resolver := TokenPrefixResolver{}

	first, err := resolver.Resolve("abcd1234" + strings.Repeat("0", 24))
	assert.NoError(t, err)
	second, err := resolver.Resolve("abcd1234" + strings.Repeat("f", 24))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
