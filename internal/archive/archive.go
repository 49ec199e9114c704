// Package archive persists exported quiz results in a local SQLite
// database so past sessions can be reviewed.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nmehta/pharmaquiz/internal/scoring"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the results database.
type Store struct {
	db *sql.DB
}

// ErrNotFound is returned when no result exists for a session ID.
var ErrNotFound = errors.New("result not found")

// Open connects to the SQLite database at path, applying recommended
// pragmas and creating the schema when missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		session_id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL DEFAULT '',
		client_name TEXT NOT NULL DEFAULT '',
		therapy_area TEXT NOT NULL DEFAULT '',
		score REAL NOT NULL,
		grade TEXT NOT NULL,
		passed INTEGER NOT NULL,
		completed_at DATETIME NOT NULL,
		payload TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// SaveResult stores an exported result, replacing any prior record for
// the same session.
func (s *Store) SaveResult(r *scoring.Result) error {
	payload, err := scoring.Export(r)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO results
		(session_id, project_name, client_name, therapy_area, score, grade, passed, completed_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.ProjectName, r.ClientName, r.TherapyArea,
		r.Score, r.Grade, r.Passed, r.CompletedAt, string(payload))
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// GetResult loads the full result for a session ID.
func (s *Store) GetResult(sessionID string) (*scoring.Result, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM results WHERE session_id = ?`, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}
	return scoring.Parse([]byte(payload))
}

// Summary is one row of the results listing.
type Summary struct {
	SessionID   string
	ProjectName string
	TherapyArea string
	Score       float64
	Grade       string
	Passed      bool
	CompletedAt time.Time
}

// ListResults returns summaries of all stored results, newest first.
func (s *Store) ListResults() ([]Summary, error) {
	rows, err := s.db.Query(`
		SELECT session_id, project_name, therapy_area, score, grade, passed, completed_at
		FROM results ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.SessionID, &sm.ProjectName, &sm.TherapyArea,
			&sm.Score, &sm.Grade, &sm.Passed, &sm.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PHARMAQUIZ_DB environment variable
// 2. $XDG_DATA_HOME/pharmaquiz/pharmaquiz.db
// 3. ~/.local/share/pharmaquiz/pharmaquiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PHARMAQUIZ_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pharmaquiz", "pharmaquiz.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
