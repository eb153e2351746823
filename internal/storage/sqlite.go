// Package storage provides SQLite-based persistence for completed runs.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded play session.
type RunEntry struct {
	ID           int64
	GameID       string
	Escapes      int
	Deaths       int
	DurationSecs int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			escapes INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, escapes DESC, deaths ASC);
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

// SaveRun records a completed run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, escapes, deaths, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, escapes, deaths, duration_secs) VALUES (?, ?, ?, ?)",
		gameID, escapes, deaths, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given game.
// Results are ordered by escapes descending, with fewer deaths breaking ties.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, escapes, deaths, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY escapes DESC, deaths ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	entries, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// AllRuns retrieves all runs for the given game (no limit).
func (s *Store) AllRuns(gameID string) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, escapes, deaths, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY escapes DESC, deaths ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads RunEntry rows, handling the driver returning datetimes
// as either time.Time or string.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Escapes, &e.Deaths, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// BestRun returns the most escapes recorded for the given game.
// Returns 0 if no runs exist.
func (s *Store) BestRun(gameID string) (int, error) {
	var escapes sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(escapes) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&escapes)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !escapes.Valid {
		return 0, nil
	}

	return int(escapes.Int64), nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	RunCount    int
	BestEscapes int
	AvgEscapes  float64
	TotalDeaths int64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(escapes), 0), COALESCE(AVG(escapes), 0), COALESCE(SUM(deaths), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunCount, &stats.BestEscapes, &stats.AvgEscapes, &stats.TotalDeaths)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
