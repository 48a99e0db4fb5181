package kvstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQL implements Store on a single kv table in the application database.
// It works against both SQLite and PostgreSQL connections.
type SQL struct {
	db *sqlx.DB
}

// NewSQL creates the kv table if needed and returns a database-backed store
func NewSQL(db *sqlx.DB) (*SQL, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create kv table: %v", err)
	}
	return &SQL{db: db}, nil
}

// Get returns the value for key and whether the key was present
func (s *SQL) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, s.db.Rebind("SELECT value FROM kv WHERE key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %q: %v", key, err)
	}
	return value, true, nil
}

// Set adds or replaces the value for key
func (s *SQL) Set(key, value string) error {
	var query string
	if s.db.DriverName() == "postgres" {
		query = `
			INSERT INTO kv (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`
	} else {
		query = "INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)"
	}

	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %v", key, err)
	}
	return nil
}

// Delete removes the key
func (s *SQL) Delete(key string) error {
	if _, err := s.db.Exec(s.db.Rebind("DELETE FROM kv WHERE key = ?"), key); err != nil {
		return fmt.Errorf("failed to delete key %q: %v", key, err)
	}
	return nil
}

// Close is a no-op; the connection is owned by the caller
func (s *SQL) Close() error {
	return nil
}
