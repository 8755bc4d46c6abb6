// Package invitations persists project invitations. Rows are never deleted;
// status moves from pending to a terminal value exactly once, enforced with
// conditional updates.
package invitations

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, inv *models.ProjectInvitation) (*models.ProjectInvitation, error)
	GetByToken(ctx context.Context, token string) (*models.InvitationDetails, error)
	GetByID(ctx context.Context, id string) (*models.InvitationDetails, error)
	ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]*models.InvitationDetails, error)

	// Transition moves invitation id from status from to status to. It
	// returns common.ErrorConflict when the row is no longer in from.
	Transition(ctx context.Context, id string, from, to models.InvitationStatus, acceptedUserID *string) error

	// ExpireStale marks every pending invitation for email whose expiry is
	// at or before now as expired and returns how many rows changed.
	ExpireStale(ctx context.Context, email string, now time.Time) (int64, error)
}
