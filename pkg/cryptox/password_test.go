package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashCredential(t *testing.T) {
	t.Parallel()

	hash, err := HashCredential("some-api-key")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "some-api-key", hash)

	// Hashing is salted, so the same input yields different hashes
	hash2, err := HashCredential("some-api-key")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestVerifyCredential(t *testing.T) {
	t.Parallel()

	hash, err := HashCredential("correct-key")
	require.NoError(t, err)

	t.Run("matching credential verifies", func(t *testing.T) {
		require.NoError(t, VerifyCredential("correct-key", hash))
	})

	t.Run("wrong credential fails", func(t *testing.T) {
		require.ErrorIs(t, VerifyCredential("wrong-key", hash), ErrMismatch)
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		require.ErrorIs(t, VerifyCredential("correct-key", "not-a-hash"), ErrMismatch)
	})

	t.Run("empty credential fails", func(t *testing.T) {
		require.ErrorIs(t, VerifyCredential("", hash), ErrMismatch)
	})
}
