// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game-result persistence.
type Store struct {
	db *sql.DB
}

// Result records the outcome of one Klondike session.
type Result struct {
	ID        int64
	Seed      int64
	DrawCount int
	Moves     int
	Undos     int
	Won       bool
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// Stats aggregates results for one draw mode.
type Stats struct {
	DrawCount  int
	Played     int
	Won        int
	BestMoves  int // Fewest moves among wins; 0 when no game was won
	FastestWin int // Shortest winning duration in seconds; 0 when no game was won
	Streak     int // Consecutive wins ending at the most recent game
}

// WinRate returns the fraction of played games that were won.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			draw_count INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			undos INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_draw ON games(draw_count);
		CREATE INDEX IF NOT EXISTS idx_games_won ON games(draw_count, won);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	won := 0
	if r.Won {
		won = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO games (seed, draw_count, moves, undos, won, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.DrawCount, r.Moves, r.Undos, won, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent finished games.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, draw_count, moves, undos, won, duration_secs, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var won int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.DrawCount, &r.Moves, &r.Undos, &won, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// StatsFor aggregates results for the given draw mode.
func (s *Store) StatsFor(drawCount int) (Stats, error) {
	stats := Stats{DrawCount: drawCount}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0) FROM games WHERE draw_count = ?`,
		drawCount,
	).Scan(&stats.Played, &stats.Won)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	var bestMoves, fastest sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(moves), MIN(duration_secs) FROM games WHERE draw_count = ? AND won = 1`,
		drawCount,
	).Scan(&bestMoves, &fastest)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query win stats: %w", err)
	}
	if bestMoves.Valid {
		stats.BestMoves = int(bestMoves.Int64)
	}
	if fastest.Valid {
		stats.FastestWin = int(fastest.Int64)
	}

	streak, err := s.winStreak(drawCount)
	if err != nil {
		return stats, err
	}
	stats.Streak = streak

	return stats, nil
}

// winStreak counts consecutive wins from the most recent game backwards.
func (s *Store) winStreak(drawCount int) (int, error) {
	rows, err := s.db.Query(
		`SELECT won FROM games
		 WHERE draw_count = ?
		 ORDER BY created_at DESC, id DESC`,
		drawCount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query streak: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var won int
		if err := rows.Scan(&won); err != nil {
			return 0, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if won == 0 {
			break
		}
		streak++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return streak, nil
}

// ClearResults deletes all recorded games.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
