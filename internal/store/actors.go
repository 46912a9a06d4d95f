package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vane-tools/vanectl/internal/domain"
)

const actorColumns = `id, name, op, online, last_seen`

// Connect marks name online, creating the actor with a fresh id on first use.
func (s *Store) Connect(name string) (domain.Actor, error) {
	now := s.timestamp()

	_, err := s.db.Exec(
		`INSERT INTO actors (id, name, op, online, last_seen)
		 VALUES (?, ?, 0, 1, ?)
		 ON CONFLICT(name) DO UPDATE SET online = 1, last_seen = excluded.last_seen`,
		uuid.NewString(), name, now,
	)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("connect %s: %w", name, err)
	}

	actor, _, err := s.FindByName(name)
	return actor, err
}

// Disconnect marks name offline.
func (s *Store) Disconnect(name string) error {
	return s.updateActor(name, `UPDATE actors SET online = 0, last_seen = ? WHERE name = ?`, s.timestamp(), name)
}

// SetOp grants or revokes operator status.
func (s *Store) SetOp(name string, op bool) error {
	return s.updateActor(name, `UPDATE actors SET op = ? WHERE name = ?`, op, name)
}

func (s *Store) updateActor(name, query string, args ...any) error {
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrActorNotFound, name)
	}
	return nil
}

// Online returns the connected actors ordered by name.
func (s *Store) Online() ([]domain.Actor, error) {
	rows, err := s.db.Query(`SELECT ` + actorColumns + ` FROM actors WHERE online = 1 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list online actors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Actor
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindByName looks an actor up by exact name.
func (s *Store) FindByName(name string) (domain.Actor, bool, error) {
	row := s.db.QueryRow(`SELECT `+actorColumns+` FROM actors WHERE name = ?`, name)
	a, err := scanActor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Actor{}, false, nil
	}
	if err != nil {
		return domain.Actor{}, false, err
	}
	return a, true, nil
}

// Grant adds a permission pattern to name. Granting twice is a no-op.
func (s *Store) Grant(name, pattern string) error {
	id, err := s.actorID(name)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO actor_permissions (actor_id, pattern, granted_at) VALUES (?, ?, ?)
		 ON CONFLICT(actor_id, pattern) DO NOTHING`,
		id, pattern, s.timestamp(),
	)
	if err != nil {
		return fmt.Errorf("grant %s to %s: %w", pattern, name, err)
	}
	return nil
}

// Revoke removes a permission pattern from name.
func (s *Store) Revoke(name, pattern string) error {
	id, err := s.actorID(name)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM actor_permissions WHERE actor_id = ? AND pattern = ?`, id, pattern); err != nil {
		return fmt.Errorf("revoke %s from %s: %w", pattern, name, err)
	}
	return nil
}

// Permissions returns the patterns granted to name, sorted.
func (s *Store) Permissions(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT p.pattern FROM actor_permissions p
		 JOIN actors a ON a.id = p.actor_id
		 WHERE a.name = ? ORDER BY p.pattern`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("permissions of %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var pattern string
		if err := rows.Scan(&pattern); err != nil {
			return nil, err
		}
		out = append(out, pattern)
	}
	return out, rows.Err()
}

func (s *Store) actorID(name string) (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM actors WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrActorNotFound, name)
	}
	return id, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActor(row rowScanner) (domain.Actor, error) {
	var (
		a        domain.Actor
		lastSeen string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Op, &a.Online, &lastSeen); err != nil {
		return domain.Actor{}, err
	}
	t, err := parseTime(lastSeen)
	if err != nil {
		return domain.Actor{}, err
	}
	a.LastSeen = t
	return a, nil
}
