// Package common defines shared constants and sentinel errors used across
// taskhub components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Error kinds. Domain errors wrap one of these with %w so transport
	// layers can map them without knowing every specific failure.
	ErrorNotFound     = errors.New("not found")
	ErrorConflict     = errors.New("conflict")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorBadRequest   = errors.New("bad request")
	ErrorInternal     = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
