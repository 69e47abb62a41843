package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("front-desk-secret")
	require.NoError(t, err)
	assert.Contains(t, hash, "$")

	t.Run("CorrectPassword", func(t *testing.T) {
		assert.True(t, VerifyPassword("front-desk-secret", hash))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		assert.False(t, VerifyPassword("wrong-password", hash))
	})

	t.Run("MalformedStoredValue", func(t *testing.T) {
		assert.False(t, VerifyPassword("front-desk-secret", "no-separator"))
		assert.False(t, VerifyPassword("front-desk-secret", "zz$zz"))
	})

	t.Run("SaltsDiffer", func(t *testing.T) {
		other, err := HashPassword("front-desk-secret")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}
