// Package sqlitestore persists records as rows of a single key/value table
// in an SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a storage.Backend on SQLite.
type Store struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

var _ storage.Backend = (*Store)(nil)

// New opens (or creates) the database at dbPath and applies migrations.
func New(dbPath string, logger logging.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log := logger.WithField(logging.FieldBackend, storage.KindSQLite)
	log.Debug("SQLite record storage ready", logging.Field{Key: logging.FieldPath, Value: dbPath})

	return &Store{db: db, logger: log, now: time.Now}, nil
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM records WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load record %s: %w", name, err)
	}
	return []byte(data), nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save record %s: %w", name, err)
	}
	s.logger.Debug("Record saved", logging.Field{Key: logging.FieldRecord, Value: name})
	return nil
}

// UpdatedAt returns when the named record was last saved.
func (s *Store) UpdatedAt(ctx context.Context, name string) (time.Time, error) {
	if err := storage.ValidateName(name); err != nil {
		return time.Time{}, err
	}
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM records WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, storage.ErrRecordNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read record %s: %w", name, err)
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func (s *Store) Kind() string { return storage.KindSQLite }

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
