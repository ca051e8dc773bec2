// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Persisted keys.
const (
	KeySessions   = "studySessions"
	KeyProfiles   = "timerProfiles"
	KeyLimitState = "promptLimitState"
)

// ErrNotFound reports a missing key.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store over SQLite. Values are JSON documents.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := s.db.Exec(stmt)
	return err
}

// GetRaw returns the stored JSON document for key, or ErrNotFound.
func (s *Store) GetRaw(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// SetRaw stores a JSON document under key, replacing any previous value.
func (s *Store) SetRaw(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	return err
}

// Get reads and decodes the value under key. Missing keys, read errors, and
// malformed documents all fall back to def; failures are logged, not surfaced.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, err := s.GetRaw(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		zap.S().Warnw("failed to read key, using default", "key", key, "error", err)
		return def
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		zap.S().Warnw("failed to decode key, using default", "key", key, "error", err)
		return def
	}
	return out
}

// Set encodes and stores the value under key. Best-effort: failures are
// logged and swallowed.
func Set[T any](ctx context.Context, s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		zap.S().Warnw("failed to encode key", "key", key, "error", err)
		return
	}
	if err := s.SetRaw(ctx, key, raw); err != nil {
		zap.S().Warnw("failed to write key", "key", key, "error", err)
	}
}
