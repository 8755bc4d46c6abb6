// Package projects is the membership side of project storage: the parts
// invitations need to read a project and grow its member list.
package projects

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// AddMember inserts the membership pair. An existing pair yields
	// common.ErrorConflict.
	AddMember(ctx context.Context, projectID, userID string) error
	IsMember(ctx context.Context, projectID, userID string) (bool, error)
}
