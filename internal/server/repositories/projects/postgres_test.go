package projects

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskhub/internal/common"
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

func TestGetByID(t *testing.T) {
	q := `(?s)^SELECT\s+id,\s*name,\s*description,\s*owner_id,\s*created_at\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1\s*$`

	t.Run("found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(q).WithArgs("proj-1").WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "owner_id", "created_at"}).
				AddRow("proj-1", "Apollo", "moon shot", "u-alice", time.Now()))

		p, err := repo.GetByID(context.Background(), "proj-1")
		require.NoError(t, err)
		assert.Equal(t, "u-alice", p.OwnerID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(q).WithArgs("proj-x").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "proj-x")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(q).WithArgs("not-a-uuid").
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "not-a-uuid"`})

		_, err := repo.GetByID(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestAddMember(t *testing.T) {
	q := `(?s)^INSERT\s+INTO\s+project_members\s*\(project_id,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

	t.Run("ok", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WithArgs("proj-1", "u-bob").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.AddMember(context.Background(), "proj-1", "u-bob"))
	})

	t.Run("duplicate pair", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "project_members_pkey"})
		assert.ErrorIs(t, repo.AddMember(context.Background(), "proj-1", "u-bob"), common.ErrorConflict)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(q).WillReturnError(errors.New("db err"))
		err := repo.AddMember(context.Background(), "proj-1", "u-bob")
		if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}

func TestIsMember(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS\s*\(\s*SELECT\s+1\s+FROM\s+project_members\s+WHERE\s+project_id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*\)\s*$`
	mock.ExpectQuery(q).WithArgs("proj-1", "u-bob").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs("proj-1", "u-eve").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.IsMember(context.Background(), "proj-1", "u-bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsMember(context.Background(), "proj-1", "u-eve")
	require.NoError(t, err)
	assert.False(t, ok)
}
