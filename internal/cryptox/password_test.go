package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "unexpected hash format %q", hash)

	require.NoError(t, h.Compare("correct horse", hash))
	assert.ErrorIs(t, h.Compare("battery staple", hash), ErrMismatchedHashAndPassword)
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestPasswordHasher_CostClamped(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(1).Cost())
	assert.Equal(t, 12, NewPasswordHasher(DefaultCost).Cost())
}

func TestPasswordHasher_CompareBadHash(t *testing.T) {
	err := NewPasswordHasher(bcrypt.MinCost).Compare("pw", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatchedHashAndPassword)
}

func TestPasswordHasher_CompareDummyDoesNotPanic(t *testing.T) {
	NewPasswordHasher(bcrypt.MinCost).CompareDummy("whatever")
}
