package geomdict

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS geometry_dictionaries (
	handle     TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore persists dictionaries in a SQLite database, one row per handle.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the store at path. Use ":memory:"
// for a throwaway store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Put stores body under handle, replacing any previous dictionary.
func (s *SQLiteStore) Put(ctx context.Context, handle string, body []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO geometry_dictionaries (handle, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(handle) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		handle, body, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to store dictionary %q: %w", handle, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, handle string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM geometry_dictionaries WHERE handle = ?`, handle).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %q: %w", handle, err)
	}
	return body, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, handle string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM geometry_dictionaries WHERE handle = ?`, handle)
	return err
}

// Handles lists the stored handles in sorted order.
func (s *SQLiteStore) Handles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT handle FROM geometry_dictionaries ORDER BY handle`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
