// Package registrations stores signups that are waiting for their one-time
// code. The email column is unique, so at most one pending row exists per
// address.
package registrations

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.PendingRegistration) (*models.PendingRegistration, error)
	GetByEmail(ctx context.Context, email string) (*models.PendingRegistration, error)
	UpdateOTP(ctx context.Context, id, code string, expiry time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
