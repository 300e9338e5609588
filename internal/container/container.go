// Package container provides dependency injection for the event-budget
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/event-budget/internal/config"
	"fjacquet/event-budget/internal/export"
	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/report"
	"fjacquet/event-budget/internal/storage"
	"fjacquet/event-budget/internal/storage/filestore"
	"fjacquet/event-budget/internal/storage/sqlitestore"
	"fjacquet/event-budget/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	backend  storage.Backend
	store    *store.RecordStore
	reports  *report.Writer
	exporter *export.Generator
}

// NewContainer creates and wires all application dependencies and loads the
// persisted records.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(ctx, cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	backend, err := newBackend(cfg, logger)
	if err != nil {
		return nil, err
	}

	recordStore := store.NewRecordStore(backend, logger)
	if err := recordStore.Load(ctx); err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldBackend, Value: backend.Kind()})

	return &Container{
		logger:   logger,
		config:   cfg,
		backend:  backend,
		store:    recordStore,
		reports:  report.NewWriter(logger, cfg.CSVDelimiter()),
		exporter: export.NewGenerator(logger),
	}, nil
}

func newBackend(cfg *config.Config, logger logging.Logger) (storage.Backend, error) {
	switch cfg.Storage.Backend {
	case storage.KindMemory:
		return storage.NewMemoryBackend(), nil
	case storage.KindSQLite:
		path, err := cfg.SQLitePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		return sqlitestore.New(path, logger)
	case storage.KindFile, "":
		dir, err := cfg.DataDirectory()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		return filestore.New(dir, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the loaded record store.
func (c *Container) GetStore() *store.RecordStore {
	return c.store
}

// GetBackend returns the storage backend behind the record store.
func (c *Container) GetBackend() storage.Backend {
	return c.backend
}

// GetReportWriter returns the breakdown report writer.
func (c *Container) GetReportWriter() *report.Writer {
	return c.reports
}

// GetExporter returns the backup document generator.
func (c *Container) GetExporter() *export.Generator {
	return c.exporter
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage backend: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
