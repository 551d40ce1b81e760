// Package snapshot persists the authenticated session between runs. The
// user, token and role always travel together as one row, so no code path
// can write one without the others.
package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"sacco-desk/internal/core/domain"
)

// Store is a SQLite-backed single-row session snapshot.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at dbPath and applies the
// schema.
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id    INTEGER PRIMARY KEY CHECK (id = 1),
			user  TEXT NOT NULL,
			token TEXT NOT NULL,
			role  TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the user, token and role as one atomic snapshot.
func (s *Store) Save(user *domain.UserProfile, token string, role domain.Role) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO session (id, user, token, role) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user = excluded.user, token = excluded.token, role = excluded.role
	`, string(userJSON), token, string(role))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. Returns domain.ErrNoSession when nothing
// is persisted.
func (s *Store) Load() (*domain.UserProfile, string, domain.Role, error) {
	var userJSON, token, role string
	err := s.db.QueryRow(`SELECT user, token, role FROM session WHERE id = 1`).Scan(&userJSON, &token, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", domain.ErrNoSession
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("load session: %w", err)
	}

	var user domain.UserProfile
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, "", "", fmt.Errorf("decode user: %w", err)
	}
	return &user, token, domain.Role(role), nil
}

// Clear erases the snapshot. Safe to call when nothing is stored.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
