// Package filestore persists records as one JSON file per record name in a
// data directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/storage"
)

// Store keeps records under Dir as <name>.json.
type Store struct {
	dir    string
	logger logging.Logger
}

var _ storage.Backend = (*Store)(nil)

// New returns a Store rooted at dir, creating the directory if needed.
func New(dir string, logger logging.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, fmt.Errorf("prepare data directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger.WithField(logging.FieldBackend, storage.KindFile),
	}, nil
}

// Path returns the file backing the named record.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}

	path := s.Path(name)
	data, err := fileutils.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Record file not found",
				logging.Field{Key: logging.FieldRecord, Value: name},
				logging.Field{Key: logging.FieldPath, Value: path})
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("load record %s: %w", name, err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateName(name); err != nil {
		return err
	}

	path := s.Path(name)
	if err := fileutils.WriteFileAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("save record %s: %w", name, err)
	}
	s.logger.Debug("Record saved",
		logging.Field{Key: logging.FieldRecord, Value: name},
		logging.Field{Key: logging.FieldPath, Value: path})
	return nil
}

func (s *Store) Kind() string { return storage.KindFile }

func (s *Store) Close() error { return nil }
