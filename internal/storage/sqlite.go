// Package storage persists sector progress and run history in SQLite.
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
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.ringshot/ringshot.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LevelProgress is the saved state of one sector.
type LevelProgress struct {
	LevelID  int
	Stars    int // Best stars earned, 0 when never cleared
	Unlocked bool
}

// RunRecord is one finished attempt at a sector.
type RunRecord struct {
	ID          int64
	LevelID     int
	Success     bool
	Stars       int
	Score       int
	PerfectHits int
	CreatedAt   time.Time
}

// LevelStats aggregates the run history of a sector.
type LevelStats struct {
	LevelID    int
	Runs       int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestStars  int
	LastPlayed time.Time
}

// WinRate returns wins over runs, or 0 when nothing was played.
func (s LevelStats) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
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
			level_id INTEGER PRIMARY KEY,
			stars INTEGER NOT NULL DEFAULT 0,
			unlocked INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			success INTEGER NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			perfect_hits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, score DESC);
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

// Progress returns the state of every sector in levelIDs, in the same order.
// Sectors with no saved row are locked with zero stars, except the first,
// which is always unlocked.
func (s *Store) Progress(levelIDs []int) ([]LevelProgress, error) {
	rows, err := s.db.Query("SELECT level_id, stars, unlocked FROM progress")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	saved := make(map[int]LevelProgress)
	for rows.Next() {
		var p LevelProgress
		if err := rows.Scan(&p.LevelID, &p.Stars, &p.Unlocked); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		saved[p.LevelID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	result := make([]LevelProgress, len(levelIDs))
	for i, id := range levelIDs {
		p, ok := saved[id]
		if !ok {
			p = LevelProgress{LevelID: id}
		}
		if i == 0 {
			p.Unlocked = true
		}
		result[i] = p
	}
	return result, nil
}

// SaveLevelComplete records a cleared sector. The stored star count only
// ever rises. A nextID of zero or less unlocks nothing.
func (s *Store) SaveLevelComplete(levelID, stars, nextID int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO progress (level_id, stars, unlocked) VALUES (?, ?, 1)
		 ON CONFLICT(level_id) DO UPDATE SET
		   stars = MAX(stars, excluded.stars),
		   unlocked = 1,
		   updated_at = CURRENT_TIMESTAMP`,
		levelID, stars,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %d: %w", levelID, err)
	}

	if nextID > 0 {
		_, err = tx.Exec(
			`INSERT INTO progress (level_id, stars, unlocked) VALUES (?, 0, 1)
			 ON CONFLICT(level_id) DO UPDATE SET unlocked = 1, updated_at = CURRENT_TIMESTAMP`,
			nextID,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot unlock level %d: %w", nextID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (level_id, success, stars, score, perfect_hits)
		 VALUES (?, ?, ?, ?, ?)`,
		run.LevelID, run.Success, run.Stars, run.Score, run.PerfectHits,
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

// TopRuns retrieves the best N runs for a sector, ordered by score descending.
func (s *Store) TopRuns(levelID, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, success, stars, score, perfect_hits, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Success, &r.Stars, &r.Score, &r.PerfectHits, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score recorded for a sector, or 0.
func (s *Store) HighScore(levelID int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// TotalStars sums the best stars over all sectors.
func (s *Store) TotalStars() (int, error) {
	var total int
	if err := s.db.QueryRow("SELECT COALESCE(SUM(stars), 0) FROM progress").Scan(&total); err != nil {
		return 0, fmt.Errorf("storage: cannot query total stars: %w", err)
	}
	return total, nil
}

// ResetProgress forgets stars and unlocks. Run history is kept.
func (s *Store) ResetProgress() error {
	if _, err := s.db.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// LevelStats retrieves aggregated statistics for a sector.
func (s *Store) LevelStats(levelID int) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(MAX(stars), 0)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.BestStars)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
