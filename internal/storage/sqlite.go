// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	// DefaultMaxEntries is the size of the high-score table.
	DefaultMaxEntries = 10

	// MaxNameLength is the longest accepted player name, in runes.
	MaxNameLength = 12
)

var (
	// ErrEmptyName is returned when a name is blank after trimming.
	ErrEmptyName = errors.New("storage: name is empty")

	// ErrNoScore is returned when saving a score that is not positive.
	ErrNoScore = errors.New("storage: score must be positive")
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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

	store := &Store{db: db, maxEntries: DefaultMaxEntries}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC, id);
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

// SetMaxEntries changes how many scores per game are kept.
// Non-positive values restore the default.
func (s *Store) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	s.maxEntries = n
}

// MaxEntries returns the size of the high-score table.
func (s *Store) MaxEntries() int {
	return s.maxEntries
}

// NormalizeName trims surrounding whitespace, strips the separators of
// the legacy score file and caps the length at MaxNameLength runes.
func NormalizeName(name string) (string, error) {
	name = strings.Map(func(r rune) rune {
		if r == ':' || r == ';' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name, nil
}

// Qualifies reports whether score would enter the high-score table.
// A full table admits only scores strictly above its lowest entry.
func (s *Store) Qualifies(gameID string, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	top, err := s.TopScores(gameID, s.maxEntries)
	if err != nil {
		return false, err
	}
	if len(top) < s.maxEntries {
		return true, nil
	}
	return top[len(top)-1].Score < score, nil
}

// SaveScore records a named score for the given game and trims the table
// back to MaxEntries. Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, name string, score int) (int64, error) {
	if score <= 0 {
		return 0, ErrNoScore
	}
	name, err := NormalizeName(name)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, name, score) VALUES (?, ?, ?)",
		gameID, name, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := s.Prune(gameID); err != nil {
		return id, err
	}
	return id, nil
}

// Prune deletes every score that is not in the top MaxEntries and returns
// how many rows were removed. Equal scores keep the earlier entry.
func (s *Store) Prune(gameID string) (int64, error) {
	result, err := s.db.Exec(
		`DELETE FROM scores
		 WHERE game_id = ?
		   AND id NOT IN (
		     SELECT id FROM scores
		     WHERE game_id = ?
		     ORDER BY score DESC, id ASC
		     LIMIT ?
		   )`,
		gameID, gameID, s.maxEntries,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune scores: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned rows: %w", err)
	}
	return n, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, earlier entries first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, name, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics over the kept scores.
type GameStats struct {
	GameID     string
	Entries    int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Entries, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
