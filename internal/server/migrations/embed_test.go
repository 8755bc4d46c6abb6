package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedInOrder(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"00001_users.sql",
		"00002_pending_registrations.sql",
		"00003_projects.sql",
		"00004_project_invitations.sql",
	}, names)
}

func TestMigrations_HaveUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, ".")
	require.NoError(t, err)

	for _, e := range entries {
		b, err := fs.ReadFile(Migrations, e.Name())
		require.NoError(t, err)
		s := string(b)
		assert.True(t, strings.Contains(s, "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(s, "-- +goose Down"), e.Name())
	}
}
