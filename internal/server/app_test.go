package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/notify"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	repomanager.RepositoryManager
	migrateErr error
	migrated   bool
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	f.migrated = true
	return f.migrateErr
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

// stubStorage swaps the database and repository seams for the test.
func stubStorage(t *testing.T, monitorPings ...bool) (sqlmock.Sqlmock, *fakeManager) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(len(monitorPings) > 0 && monitorPings[0]))
	require.NoError(t, err)

	fm := &fakeManager{}
	origOpen, origRM := openDB, newRepositoryManager
	openDB = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" {
			return nil, errors.New("unexpected driver " + driver)
		}
		return db, nil
	}
	newRepositoryManager = func() repomanager.RepositoryManager { return fm }
	t.Cleanup(func() {
		openDB, newRepositoryManager = origOpen, origRM
		_ = db.Close()
	})
	return mock, fm
}

func TestNewApp_Wires(t *testing.T) {
	_, fm := stubStorage(t)

	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.True(t, fm.migrated)
	assert.NotNil(t, app.credentials)
	assert.NotNil(t, app.invitations)
	assert.NotNil(t, app.credentials.Issuer())
}

func TestNewApp_PingFails(t *testing.T) {
	mock, fm := stubStorage(t, true)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
	assert.False(t, fm.migrated)
}

func TestNewApp_MigrationsFail(t *testing.T) {
	_, fm := stubStorage(t)
	fm.migrateErr = errors.New("boom")

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "migrations error: boom")
}

func TestNewApp_OpenFails(t *testing.T) {
	origOpen := openDB
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("bad dsn") }
	t.Cleanup(func() { openDB = origOpen })

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	assert.ErrorContains(t, err, "bad dsn")
}

func TestNewNotifier(t *testing.T) {
	c := testConfig()

	n, err := newNotifier(context.Background(), c, logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &notify.LogNotifier{}, n)

	c.Notifier = "carrier-pigeon"
	_, err = newNotifier(context.Background(), c, logging.Nop{})
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	stubStorage(t)

	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunReturnsListenError(t *testing.T) {
	stubStorage(t)

	c := testConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"
	app, err := newApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
