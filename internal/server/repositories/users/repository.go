package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

// Repository persists users and their security fields. Conditional updates
// (rotate, reset, verify) report common.ErrorConflict when the guarding
// value no longer matches, so concurrent callers cannot both succeed.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*models.User, error)
	GetByEmailVerificationTokenHash(ctx context.Context, hash string) (*models.User, error)

	SetRefreshTokenHash(ctx context.Context, userID string, hash *string) error
	RotateRefreshTokenHash(ctx context.Context, userID, oldHash, newHash string) error

	SetResetToken(ctx context.Context, userID, hash string, expiry time.Time) error
	ResetPassword(ctx context.Context, userID, resetHash, passwordHash string) error

	SetEmailVerificationToken(ctx context.Context, userID, hash string, expiry time.Time) error
	MarkEmailVerified(ctx context.Context, userID, verificationHash string) error
}
