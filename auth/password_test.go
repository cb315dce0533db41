package auth_test

import (
	"testing"

	"github.com/bookowl/backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("correct horse battery staple", digest))
	assert.False(t, auth.CheckPassword("wrong password", digest))
}

func TestHashPasswordSaltsFreshly(t *testing.T) {
	first, err := auth.HashPassword("same input")
	require.NoError(t, err)
	second, err := auth.HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, auth.CheckPassword("same input", first))
	assert.True(t, auth.CheckPassword("same input", second))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	assert.False(t, auth.CheckPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, auth.CheckPassword("anything", ""))
}
