package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("pw1", bcryptTestCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, password.Verify("pw1", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("", bcryptTestCost)
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pw", ""), password.ErrInvalidPassword)
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("pw1", bcryptTestCost)
	require.NoError(t, err)

	second, err := password.Hash("pw1", bcryptTestCost)
	require.NoError(t, err)

	// bcrypt salts every hash; equal inputs must not collide.
	assert.NotEqual(t, first, second)
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, password.Digest("alice"), password.Digest("alice"))
	assert.NotEqual(t, password.Digest("alice"), password.Digest("bob"))

	// Known SHA-256 vector.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		password.Digest(""))
}

// low cost keeps the test suite fast
const bcryptTestCost = 4
