// Package sqlite persists users and saved searches in a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection. It implements usecase.UserStore.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if needed) the database at path and runs the
// schema migration. Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the tables if they do not exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		last_login DATETIME
	);

	CREATE TABLE IF NOT EXISTS saved_searches (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		departure_date TEXT NOT NULL,
		return_date TEXT NOT NULL DEFAULT '',
		passengers INTEGER NOT NULL DEFAULT 1,
		max_price INTEGER NOT NULL DEFAULT 0,
		airline_preference TEXT NOT NULL DEFAULT '',
		notification_enabled BOOLEAN NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_saved_searches_user ON saved_searches(user_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
