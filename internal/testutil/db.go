package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/vane-tools/vanectl/internal/store"
	"github.com/vane-tools/vanectl/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")

	return db
}

// NewTestStore returns a Store over NewTestDB.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedActors connects each name, then marks the ones listed in offline as
// disconnected.
func SeedActors(t *testing.T, s *store.Store, online []string, offline ...string) {
	t.Helper()

	for _, name := range append(append([]string(nil), online...), offline...) {
		_, err := s.Connect(name)
		require.NoError(t, err, "failed to seed actor %s", name)
	}
	for _, name := range offline {
		require.NoError(t, s.Disconnect(name))
	}
}

// FixedClock returns a clock that advances by one second per call,
// starting at start.
func FixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}
