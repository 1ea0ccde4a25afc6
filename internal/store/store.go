// Package store implements the durable key-value engine backing all
// collections: a single SQLite table mapping fixed string keys to JSON
// payloads. Each collection lives whole under its key; there are no
// per-record rows or indices.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Fixed keys of the persisted layout. Each collection key holds one JSON
// array; the session key holds a single user record and may be absent.
const (
	KeyUsers         = "uniflow_users"
	KeyCourses       = "uniflow_courses"
	KeyMemberships   = "uniflow_memberships"
	KeyClasses       = "uniflow_classes"
	KeyAnnouncements = "uniflow_announcements"
	KeyObservations  = "uniflow_observations"
	KeySession       = "uniflow_session"
)

var collectionKeys = []string{
	KeyUsers,
	KeyCourses,
	KeyMemberships,
	KeyClasses,
	KeyAnnouncements,
	KeyObservations,
}

// KV is the read/write surface shared by the store and its transactions.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store owns the store file. Construct one per process and hand it to the
// repositories; there is no ambient singleton.
type Store struct {
	db   *sql.DB
	path string
	log  zerolog.Logger
}

// Open opens the store file, creating it and its kv table when absent.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{
		db:   db,
		path: path,
		log:  logger.With().Str("component", "store").Logger(),
	}, nil
}

// Initialize seeds the six collection keys with empty arrays on first run.
// The presence of the users key marks an initialized store; the session key
// is never created here.
func (s *Store) Initialize(ctx context.Context) error {
	return s.Update(ctx, func(tx *Tx) error {
		_, ok, err := tx.Get(ctx, KeyUsers)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		for _, key := range collectionKeys {
			if err := tx.Set(ctx, key, []byte("[]")); err != nil {
				return err
			}
		}
		s.log.Debug().Str("path", s.path).Msg("seeded empty collections")
		return nil
	})
}

const upsertQuery = `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

// Get returns the payload under key, reporting absence via the bool.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes the payload under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Update runs fn inside a single transaction. Writes that must land
// together (a course and its creator membership) go through here.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	t := &Tx{tx: tx}
	if err := fn(t); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Tx is a transaction-scoped view of the store. It satisfies KV, so the
// repositories run against it unchanged.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := t.tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (t *Tx) Set(ctx context.Context, key string, value []byte) error {
	if _, err := t.tx.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (t *Tx) Delete(ctx context.Context, key string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*Tx)(nil)
)
