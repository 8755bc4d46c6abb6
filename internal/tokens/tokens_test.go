package tokens

import (
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeRe = regexp.MustCompile(`^[0-9]{6}$`)

func TestRandomToken_URLSafeAndLongEnough(t *testing.T) {
	tok := RandomToken()

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, TokenBytes)
	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")
	assert.NotContains(t, tok, "=")
}

func TestRandomToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok := RandomToken()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %q", tok)
		seen[tok] = struct{}{}
	}
}

func TestRandomCode_Format(t *testing.T) {
	for i := 0; i < 5000; i++ {
		c := RandomCode()
		require.True(t, codeRe.MatchString(c), "bad code %q", c)
	}
}

func TestRandomCode_CoversLeadingZeros(t *testing.T) {
	// P(no code below 100000 in 5000 draws) = 0.9^5000, effectively zero.
	found := false
	for i := 0; i < 5000 && !found; i++ {
		found = RandomCode()[0] == '0'
	}
	assert.True(t, found, "expected at least one zero-padded code")
}

func TestRandom_ImplementsGenerator(t *testing.T) {
	var g Generator = Random{}
	assert.Len(t, g.Code(), CodeDigits)
	assert.NotEmpty(t, g.Token())
}

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3}
	Wipe(buf)
	assert.Equal(t, []byte{0, 0, 0}, buf)
	Wipe(nil)
}
