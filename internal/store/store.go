package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// QuizRepo returns a QuizRepo backed by this store.
func (s *Store) QuizRepo() QuizRepo {
	return &quizRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
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

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	rank_method TEXT NOT NULL,
	seed        INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS quiz_items (
	quiz_id  TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	type     TEXT NOT NULL,
	question TEXT NOT NULL,
	options  TEXT NOT NULL DEFAULT '[]',
	answer   TEXT NOT NULL,
	PRIMARY KEY (quiz_id, position)
);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZFORGE_DB environment variable
// 2. $XDG_DATA_HOME/quizforge/quizforge.db
// 3. ~/.local/share/quizforge/quizforge.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZFORGE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizforge", "quizforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
