package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// defaultTopLimit is used when TopScores gets a non-positive limit.
const defaultTopLimit = 10

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the history of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), MAX(created_at)`

// SaveScore records a finished run and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score for %s: %w", gameID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit runs of gameID, best first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.queryScores(
		"SELECT id, game_id, score, created_at FROM scores WHERE game_id = ? ORDER BY score DESC, id LIMIT ?",
		gameID, limit,
	)
}

// AllScores returns every run of gameID, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		"SELECT id, game_id, score, created_at FROM scores WHERE game_id = ? ORDER BY score DESC, id",
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best run in the history of gameID, or 0.
// The persisted best may be higher; see Best.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes the history of gameID. Bests are kept.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates the history of gameID. A game without runs
// reports zero values.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ?", gameID)
	stats, err := scanStats(row)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.GameID = gameID
	return stats, nil
}

// GetAllGamesStats aggregates the history of every played game, keyed by
// game id.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		all[stats.GameID] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*GameStats, error) {
	var (
		stats      GameStats
		gameID     sql.NullString
		lastPlayed any
	)
	err := row.Scan(&gameID, &stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, err
	}
	stats.GameID = gameID.String
	stats.LastPlayed = parseTime(lastPlayed)
	return &stats, nil
}
