package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret123")
	require.NoError(t, err)
	second, err := Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("secret123", first))
	assert.True(t, Verify("secret123", second))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	assert.False(t, Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, Verify("secret123", ""))
}
