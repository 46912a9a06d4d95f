package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/store/migrations"
)

// ErrActorNotFound is returned by operations on an actor name that was
// never connected.
var ErrActorNotFound = errors.New("store: actor not found")

// timeFormat is how timestamps are stored; it sorts lexically.
const timeFormat = time.RFC3339Nano

// Store wraps a SQLite database connection holding actors, their grants
// and the command log. It implements domain.ActorStore and
// domain.CommandRecorder.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if path == ":memory:" {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func dsn(path string) string {
	if path == ":memory:" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// SetClock replaces the time source used for last-seen and log timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database path, empty for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeFormat)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}

var (
	_ domain.ActorStore      = (*Store)(nil)
	_ domain.CommandRecorder = (*Store)(nil)
)
