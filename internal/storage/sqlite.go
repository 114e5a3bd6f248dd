// Package storage provides SQLite-based persistence for player progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockarena/internal/progress"
)

// ErrNoProgress is returned by LoadProgress for an unknown profile.
var ErrNoProgress = errors.New("storage: no progress for profile")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one stored level attempt.
type RunEntry struct {
	ID        int64
	Profile   string
	Run       progress.Run
	CreatedAt time.Time
}

// ProfileStats contains aggregated statistics for a profile.
type ProfileStats struct {
	Profile      string
	Runs         int
	Completed    int // Completed runs, not distinct levels
	TotalApples  int
	TotalElapsed time.Duration
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			current_level INTEGER NOT NULL DEFAULT 1,
			golden_apples INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			apples INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_profile ON level_runs(profile);
		CREATE INDEX IF NOT EXISTS idx_level_runs_best ON level_runs(level_id, completed, elapsed_ms);
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

// LoadProgress reads the save of profile, rebuilding per-level history from
// its stored runs. Returns ErrNoProgress if the profile was never saved.
func (s *Store) LoadProgress(profile string) (*progress.Progress, error) {
	p := progress.New()
	err := s.db.QueryRow(
		"SELECT current_level, golden_apples FROM progress WHERE profile = ?",
		profile,
	).Scan(&p.CurrentLevel, &p.GoldenApples)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProgress
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level_id, apples, elapsed_ms, completed, created_at
		 FROM level_runs
		 WHERE profile = ?
		 ORDER BY id`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	entries, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		p.Replay(e.Run)
	}
	return p, nil
}

// SaveProgress upserts the current level and apple count of profile.
// Per-level history lives in level_runs and is written by RecordRun.
func (s *Store) SaveProgress(profile string, p *progress.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, current_level, golden_apples, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			current_level = excluded.current_level,
			golden_apples = excluded.golden_apples,
			updated_at = excluded.updated_at`,
		profile, p.CurrentLevel, p.GoldenApples,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// RecordRun stores one attempt. Returns the ID of the inserted record.
func (s *Store) RecordRun(profile string, run progress.Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO level_runs (profile, level_id, apples, elapsed_ms, completed) VALUES (?, ?, ?, ?, ?)",
		profile, run.LevelID, run.Apples, run.Elapsed.Milliseconds(), run.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRuns retrieves the fastest completed runs of a level across profiles.
func (s *Store) BestRuns(levelID, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level_id, apples, elapsed_ms, completed, created_at
		 FROM level_runs
		 WHERE level_id = ? AND completed = 1
		 ORDER BY elapsed_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ProfileStats retrieves aggregated run statistics for a profile.
func (s *Store) ProfileStats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	var elapsedMs int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(SUM(apples), 0),
		        COALESCE(SUM(elapsed_ms), 0), MAX(created_at)
		 FROM level_runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.Completed, &stats.TotalApples, &elapsedMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.TotalElapsed = time.Duration(elapsedMs) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ResetProfile deletes the save and every run of profile.
func (s *Store) ResetProfile(profile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM level_runs WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM progress WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Run.LevelID, &e.Run.Apples, &elapsedMs, &e.Run.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Run.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
