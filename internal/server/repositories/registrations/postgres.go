package registrations

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

const emailConstraint = "pending_registrations_email_key"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.PendingRegistration) (*models.PendingRegistration, error) {
	query :=
		`INSERT INTO pending_registrations (email, password_hash, name, otp_code, otp_expiry)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, p.Email, p.PasswordHash, p.Name, p.OTPCode, p.OTPExpiry).
		Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err, emailConstraint) {
			return nil, fmt.Errorf("%w: registration already pending", common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.PendingRegistration, error) {
	query :=
		`SELECT id, email, password_hash, name, otp_code, otp_expiry, created_at
		 FROM pending_registrations
		 WHERE email = $1
		 `

	p := &models.PendingRegistration{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.OTPCode, &p.OTPExpiry, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) UpdateOTP(ctx context.Context, id, code string, expiry time.Time) error {
	query :=
		`UPDATE pending_registrations SET otp_code = $2, otp_expiry = $3
		 WHERE id = $1
		 `
	return r.exec(ctx, true, query, id, code, expiry)
}

// Delete removes the row by id. A missing row means another request already
// consumed it.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, true, `DELETE FROM pending_registrations WHERE id = $1`, id)
}

// DeleteByEmail is a no-op when nothing is pending.
func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.exec(ctx, false, `DELETE FROM pending_registrations WHERE email = $1`, email)
}

func (r *PostgresRepository) exec(ctx context.Context, mustHit bool, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !mustHit {
		return nil
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
