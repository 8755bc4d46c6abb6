package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/tokens"
)

const saltBytes = 16

// HashRefreshToken returns "salthex$digesthex" where digest is
// SHA-256(salt || token). Refresh tokens are high-entropy JWTs, so a fast
// salted digest is sufficient.
func HashRefreshToken(token string) string {
	salt := tokens.RandomBytes(saltBytes)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(saltedDigest(salt, token))
}

// VerifyRefreshToken reports whether token matches a value produced by
// HashRefreshToken. The comparison is constant time.
func VerifyRefreshToken(token, stored string) bool {
	saltHex, digestHex, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, saltedDigest(salt, token)) == 1
}

// LookupHash returns the hex SHA-256 of token. It is deterministic so that
// reset and verification tokens can be found by equality on the stored value.
func LookupHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// EqualCodes compares two short codes in constant time.
func EqualCodes(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func saltedDigest(salt []byte, token string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(token))
	return h.Sum(nil)
}
