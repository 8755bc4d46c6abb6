package invitations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

const tokenConstraint = "project_invitations_token_key"

const detailsSelect = `SELECT i.id, i.email, i.token, i.status, i.expires_at, i.project_id, i.inviter_id,
		 i.accepted_user_id, i.created_at, i.updated_at,
		 p.name, p.description, u.name
		 FROM project_invitations i
		 JOIN projects p ON p.id = i.project_id
		 JOIN users u ON u.id = i.inviter_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, inv *models.ProjectInvitation) (*models.ProjectInvitation, error) {
	query :=
		`INSERT INTO project_invitations (email, token, status, expires_at, project_id, inviter_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		inv.Email, inv.Token, inv.Status, inv.ExpiresAt, inv.ProjectID, inv.InviterID).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err, tokenConstraint) {
			return nil, fmt.Errorf("%w: invitation token collision", common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return inv, nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.InvitationDetails, error) {
	return r.getOne(ctx, detailsSelect+` WHERE i.token = $1`, token)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.InvitationDetails, error) {
	return r.getOne(ctx, detailsSelect+` WHERE i.id = $1`, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.InvitationDetails, error) {
	d, err := scanDetails(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidText(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

// ListPendingByEmail returns live pending invitations, newest first.
func (r *PostgresRepository) ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]*models.InvitationDetails, error) {
	query := detailsSelect + `
		 WHERE i.email = $1 AND i.status = 'pending' AND i.expires_at > $2
		 ORDER BY i.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, email, now)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.InvitationDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Transition(ctx context.Context, id string, from, to models.InvitationStatus, acceptedUserID *string) error {
	query :=
		`UPDATE project_invitations
		 SET status = $3, accepted_user_id = COALESCE($4, accepted_user_id), updated_at = now()
		 WHERE id = $1 AND status = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, from, to, acceptedUserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: invitation is no longer %s", common.ErrorConflict, from)
	}

	return nil
}

func (r *PostgresRepository) ExpireStale(ctx context.Context, email string, now time.Time) (int64, error) {
	query :=
		`UPDATE project_invitations
		 SET status = 'expired', updated_at = now()
		 WHERE email = $1 AND status = 'pending' AND expires_at <= $2
		 `

	res, err := r.db.ExecContext(ctx, query, email, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDetails(s scanner) (*models.InvitationDetails, error) {
	d := &models.InvitationDetails{}
	err := s.Scan(
		&d.ID, &d.Email, &d.Token, &d.Status, &d.ExpiresAt, &d.ProjectID, &d.InviterID,
		&d.AcceptedUserID, &d.CreatedAt, &d.UpdatedAt,
		&d.ProjectName, &d.ProjectDescription, &d.InviterName,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
