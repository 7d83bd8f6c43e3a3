package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// BestEntry is one persisted best score.
type BestEntry struct {
	Key       string
	Score     int
	UpdatedAt time.Time
}

// Best returns the stored best for key, or 0 when none is stored.
func (s *Store) Best(key string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT score FROM bests WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best %q: %w", key, err)
	}
	if !score.Valid || score.Int64 < 0 {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SetBest stores score for key unless a higher best is already stored.
func (s *Store) SetBest(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO bests (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > bests.score`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set best %q: %w", key, err)
	}
	return nil
}

// AllBests returns every stored best, ordered by key.
func (s *Store) AllBests() ([]BestEntry, error) {
	rows, err := s.db.Query("SELECT key, score, updated_at FROM bests ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bests: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var updatedAt any
		if err := rows.Scan(&e.Key, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan best: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
