package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userCols = []string{
	"id", "email", "password_hash", "name", "role", "is_email_verified",
	"refresh_token_hash", "reset_token_hash", "reset_token_expiry",
	"email_verification_token_hash", "email_verification_expiry",
	"created_at", "updated_at",
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*password_hash,\s*name,\s*role,\s*is_email_verified\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-1", now, now)
	mock.ExpectQuery(insertQ).
		WithArgs("alice@example.com", "hash", "Alice", models.RoleMember, true).
		WillReturnRows(rows)

	u := &models.User{Email: "alice@example.com", PasswordHash: "hash", Name: "Alice", Role: models.RoleMember, IsEmailVerified: true}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmailIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "alice@example.com", "hash", "Alice", "member", true,
			"salt$digest", nil, nil, nil, nil, now, now)
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.True(t, got.IsEmailVerified)
	require.NotNil(t, got.RefreshTokenHash)
	assert.Equal(t, "salt$digest", *got.RefreshTokenHash)
	assert.Nil(t, got.ResetTokenHash)
	assert.Nil(t, got.ResetTokenExpiry)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_MalformedIDIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("x").
		WillReturnError(&pgconn.PgError{Code: "22P02"})

	_, err := repo.GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByLookups_UseTheirColumns(t *testing.T) {
	tests := []struct {
		name string
		call func(r *PostgresRepository) (*models.User, error)
		re   string
	}{
		{"id", func(r *PostgresRepository) (*models.User, error) { return r.GetByID(context.Background(), "k") }, `WHERE\s+id\s*=\s*\$1$`},
		{"reset", func(r *PostgresRepository) (*models.User, error) { return r.GetByResetTokenHash(context.Background(), "k") }, `WHERE\s+reset_token_hash\s*=\s*\$1$`},
		{"verify", func(r *PostgresRepository) (*models.User, error) {
			return r.GetByEmailVerificationTokenHash(context.Background(), "k")
		}, `WHERE\s+email_verification_token_hash\s*=\s*\$1$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+` + tt.re).
				WithArgs("k").
				WillReturnError(sql.ErrNoRows)

			_, err := tt.call(repo)
			assert.ErrorIs(t, err, common.ErrorNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRotateRefreshTokenHash(t *testing.T) {
	q := `(?s)^UPDATE\s+users\s+SET\s+refresh_token_hash\s*=\s*\$3,.*WHERE\s+id\s*=\s*\$1\s+AND\s+refresh_token_hash\s*=\s*\$2\s*$`

	t.Run("current hash rotates", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WithArgs("u-1", "old", "new").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.RotateRefreshTokenHash(context.Background(), "u-1", "old", "new"))
	})

	t.Run("stale hash conflicts", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WithArgs("u-1", "old", "new").WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.RotateRefreshTokenHash(context.Background(), "u-1", "old", "new")
		assert.ErrorIs(t, err, common.ErrorConflict)
	})
}

func TestSetRefreshTokenHash(t *testing.T) {
	q := `(?s)^UPDATE\s+users\s+SET\s+refresh_token_hash\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s*$`

	t.Run("set", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		h := "salt$digest"
		mock.ExpectExec(q).WithArgs("u-1", "salt$digest").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.SetRefreshTokenHash(context.Background(), "u-1", &h))
	})

	t.Run("clear unknown user", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WithArgs("u-x", nil).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.SetRefreshTokenHash(context.Background(), "u-x", nil), common.ErrorNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WillReturnError(errors.New("db err"))
		err := repo.SetRefreshTokenHash(context.Background(), "u-1", nil)
		if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestResetPassword_ConsumesTokenAndRevokesSession(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$3,.*reset_token_hash\s*=\s*NULL.*refresh_token_hash\s*=\s*NULL.*WHERE\s+id\s*=\s*\$1\s+AND\s+reset_token_hash\s*=\s*\$2\s*$`
	mock.ExpectExec(q).WithArgs("u-1", "rh", "newhash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u-1", "rh", "newhash").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ResetPassword(context.Background(), "u-1", "rh", "newhash"))
	assert.ErrorIs(t, repo.ResetPassword(context.Background(), "u-1", "rh", "newhash"), common.ErrorConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTokens(t *testing.T) {
	expiry := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)

	t.Run("reset", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+reset_token_hash\s*=\s*\$2,\s*reset_token_expiry\s*=\s*\$3`).
			WithArgs("u-1", "h", expiry).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.SetResetToken(context.Background(), "u-1", "h", expiry))
	})

	t.Run("verification", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+email_verification_token_hash\s*=\s*\$2,\s*email_verification_expiry\s*=\s*\$3`).
			WithArgs("u-1", "h", expiry).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.SetEmailVerificationToken(context.Background(), "u-1", "h", expiry))
	})
}

func TestMarkEmailVerified(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+is_email_verified\s*=\s*TRUE,.*WHERE\s+id\s*=\s*\$1\s+AND\s+email_verification_token_hash\s*=\s*\$2\s*$`
	mock.ExpectExec(q).WithArgs("u-1", "vh").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.MarkEmailVerified(context.Background(), "u-1", "vh"), common.ErrorConflict)
}
