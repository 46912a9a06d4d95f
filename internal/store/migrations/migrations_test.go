package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "actors", all[0].Description)
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, 3, v1)
	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	db := openMemory(t)
	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(db))
	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestTablesCreated(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	for _, table := range []string{"schema_migrations", "actors", "actor_permissions", "command_outcome", "command_log"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestOutcomesSeeded(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM command_outcome").Scan(&count))
	require.Equal(t, 5, count)
}
