package users

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

const emailConstraint = "users_email_key"

const userColumns = `id, email, password_hash, name, role, is_email_verified,
		 refresh_token_hash, reset_token_hash, reset_token_expiry,
		 email_verification_token_hash, email_verification_expiry,
		 created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (email, password_hash, name, role, is_email_verified)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.Role, user.IsEmailVerified).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err, emailConstraint) {
			return nil, fmt.Errorf("%w: email already registered", common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresRepository) GetByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE reset_token_hash = $1`, hash)
}

func (r *PostgresRepository) GetByEmailVerificationTokenHash(ctx context.Context, hash string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email_verification_token_hash = $1`, hash)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.IsEmailVerified,
		&u.RefreshTokenHash, &u.ResetTokenHash, &u.ResetTokenExpiry,
		&u.EmailVerificationTokenHash, &u.EmailVerificationExpiry,
		&u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidText(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// SetRefreshTokenHash overwrites the stored refresh hash; nil clears it.
func (r *PostgresRepository) SetRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	query :=
		`UPDATE users SET refresh_token_hash = $2, updated_at = now()
		 WHERE id = $1
		 `
	return r.execOne(ctx, common.ErrorNotFound, query, userID, hash)
}

// RotateRefreshTokenHash replaces oldHash with newHash only if oldHash is
// still current.
func (r *PostgresRepository) RotateRefreshTokenHash(ctx context.Context, userID, oldHash, newHash string) error {
	query :=
		`UPDATE users SET refresh_token_hash = $3, updated_at = now()
		 WHERE id = $1 AND refresh_token_hash = $2
		 `
	return r.execOne(ctx, common.ErrorConflict, query, userID, oldHash, newHash)
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, userID, hash string, expiry time.Time) error {
	query :=
		`UPDATE users SET reset_token_hash = $2, reset_token_expiry = $3, updated_at = now()
		 WHERE id = $1
		 `
	return r.execOne(ctx, common.ErrorNotFound, query, userID, hash, expiry)
}

// ResetPassword consumes the reset token: sets the new password hash, clears
// the reset fields and revokes the refresh session.
func (r *PostgresRepository) ResetPassword(ctx context.Context, userID, resetHash, passwordHash string) error {
	query :=
		`UPDATE users SET password_hash = $3,
		   reset_token_hash = NULL, reset_token_expiry = NULL,
		   refresh_token_hash = NULL, updated_at = now()
		 WHERE id = $1 AND reset_token_hash = $2
		 `
	return r.execOne(ctx, common.ErrorConflict, query, userID, resetHash, passwordHash)
}

func (r *PostgresRepository) SetEmailVerificationToken(ctx context.Context, userID, hash string, expiry time.Time) error {
	query :=
		`UPDATE users SET email_verification_token_hash = $2, email_verification_expiry = $3, updated_at = now()
		 WHERE id = $1
		 `
	return r.execOne(ctx, common.ErrorNotFound, query, userID, hash, expiry)
}

// MarkEmailVerified consumes the verification token and flags the email.
func (r *PostgresRepository) MarkEmailVerified(ctx context.Context, userID, verificationHash string) error {
	query :=
		`UPDATE users SET is_email_verified = TRUE,
		   email_verification_token_hash = NULL, email_verification_expiry = NULL,
		   updated_at = now()
		 WHERE id = $1 AND email_verification_token_hash = $2
		 `
	return r.execOne(ctx, common.ErrorConflict, query, userID, verificationHash)
}

// execOne runs a single-row UPDATE and returns noRows when nothing matched.
func (r *PostgresRepository) execOne(ctx context.Context, noRows error, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return noRows
	}

	return nil
}
