package store

import (
	"fmt"

	"github.com/vane-tools/vanectl/internal/domain"
)

// Record appends an entry to the command log. A zero Timestamp is
// replaced by the current time.
func (s *Store) Record(entry domain.CommandLogEntry) error {
	ts := s.timestamp()
	if !entry.Timestamp.IsZero() {
		ts = entry.Timestamp.UTC().Format(timeFormat)
	}

	_, err := s.db.Exec(
		`INSERT INTO command_log (sender, line, outcome_id, diagnostic, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.Sender, entry.Line, int(entry.Outcome), entry.Diagnostic, ts,
	)
	if err != nil {
		return fmt.Errorf("record command: %w", err)
	}
	return nil
}

// History returns the newest entries first. A limit of zero or less
// returns the whole log.
func (s *Store) History(limit int) ([]domain.CommandLogEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		`SELECT id, sender, line, outcome_id, diagnostic, timestamp
		 FROM command_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.CommandLogEntry
	for rows.Next() {
		var (
			e       domain.CommandLogEntry
			outcome int
			ts      string
		)
		if err := rows.Scan(&e.ID, &e.Sender, &e.Line, &outcome, &e.Diagnostic, &ts); err != nil {
			return nil, err
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		e.Outcome = domain.Outcome(outcome)
		out = append(out, e)
	}
	return out, rows.Err()
}
