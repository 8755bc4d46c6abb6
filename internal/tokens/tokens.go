// Package tokens produces the random secrets that gate single-use state
// transitions: opaque URL-safe tokens for links and 6-digit one-time codes.
//
// A failing system random source is unrecoverable, so every function here
// panics instead of returning an error.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	// TokenBytes is the entropy of an opaque token (256 bits).
	TokenBytes = 32

	// CodeDigits is the length of a one-time code.
	CodeDigits = 6
)

var codeSpace = big.NewInt(1_000_000)

// Generator is the seam services depend on, so tests can pin values.
type Generator interface {
	Token() string
	Code() string
}

// Random is the production Generator backed by crypto/rand.
type Random struct{}

func (Random) Token() string { return RandomToken() }
func (Random) Code() string  { return RandomCode() }

// RandomBytes returns size bytes from the system CSPRNG.
func RandomBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("tokens: system randomness unavailable: %v", err))
	}
	return b
}

// RandomToken returns a URL-safe, unpadded base64 string carrying
// TokenBytes of entropy.
func RandomToken() string {
	return base64.RawURLEncoding.EncodeToString(RandomBytes(TokenBytes))
}

// RandomCode returns a uniformly distributed, zero-padded decimal code in
// [000000, 999999].
func RandomCode() string {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		panic(fmt.Sprintf("tokens: system randomness unavailable: %v", err))
	}
	return fmt.Sprintf("%0*d", CodeDigits, n.Int64())
}

// Wipe zeroes b. Nil is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
