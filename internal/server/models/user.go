// Package models holds the persistent records owned by the identity and
// collaboration core.
package models

import "time"

// Roles a user can hold across the tenant.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is an account. Nullable security fields are nil when unset; reset
// and verification tokens are stored as lookup hashes, the refresh token as
// a salted hash.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	Name            string
	Role            string
	IsEmailVerified bool

	RefreshTokenHash *string

	ResetTokenHash   *string
	ResetTokenExpiry *time.Time

	EmailVerificationTokenHash *string
	EmailVerificationExpiry    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the sanitized view of a User returned to callers. It never
// carries hashes or tokens.
type Profile struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// Profile strips security fields from u.
func (u *User) Profile() Profile {
	return Profile{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}

// PendingRegistration is an unverified signup awaiting its one-time code.
// There is at most one per email.
type PendingRegistration struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	OTPCode      string
	OTPExpiry    time.Time
	CreatedAt    time.Time
}
