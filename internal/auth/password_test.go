package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest, "digest must never equal the plaintext")

	t.Run("salted digests differ across calls", func(t *testing.T) {
		again, err := HashPassword("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, digest, again)
	})
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret1", digest))
	assert.False(t, CheckPassword("wrong", digest))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
}
