// Package cryptox wraps the hashing primitives used for credentials:
// bcrypt for passwords, and fast SHA-256 digests for tokens that are only
// ever compared, never recovered.
package cryptox

import (
	"errors"

	"github.com/dmitrijs2005/taskhub/internal/tokens"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 12

var (
	ErrEmptyPassword             = errors.New("password must not be empty")
	ErrMismatchedHashAndPassword = errors.New("password does not match")
)

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher returns a hasher using cost, clamped to bcrypt's range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	h := &PasswordHasher{cost: cost}
	h.dummy, _ = bcrypt.GenerateFromPassword(tokens.RandomBytes(16), cost)
	return h
}

// Cost returns the configured work factor.
func (h *PasswordHasher) Cost() int { return h.cost }

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	pw := []byte(password)
	defer tokens.Wipe(pw)

	out, err := bcrypt.GenerateFromPassword(pw, h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare checks password against hash. A mismatch yields
// ErrMismatchedHashAndPassword; other errors mean the hash is unusable.
func (h *PasswordHasher) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}

// CompareDummy burns the same time as a real Compare against a hash that
// never matches. Used when the account does not exist.
func (h *PasswordHasher) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}
