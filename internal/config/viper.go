// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/event-budget/internal/fileutils"
	"fjacquet/event-budget/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "EVENT_BUDGET"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
	} `mapstructure:"storage" yaml:"storage"`

	Export struct {
		Format   string `mapstructure:"format" yaml:"format"`
		FileName string `mapstructure:"file_name" yaml:"file_name"`
	} `mapstructure:"export" yaml:"export"`

	Report struct {
		Format       string `mapstructure:"format" yaml:"format"`
		CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig loads configuration from defaults, the first config.yaml
// found in the standard locations, and EVENT_BUDGET_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigWithFile("")
}

// InitializeConfigWithFile behaves like InitializeConfig but reads the given
// config file instead of searching for one. The file must exist.
func InitializeConfigWithFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.event-budget")
		v.AddConfigPath(".event-budget")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.backend", storage.KindFile)
	v.SetDefault("storage.directory", "~/.event-budget")
	v.SetDefault("storage.sqlite_file", "event-budget.db")

	v.SetDefault("export.format", "json")
	v.SetDefault("export.file_name", "event-budget-backup")

	v.SetDefault("report.format", "table")
	v.SetDefault("report.csv_delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Storage.Backend {
	case storage.KindFile, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be 'file', 'sqlite' or 'memory')", config.Storage.Backend)
	}

	if strings.TrimSpace(config.Storage.Directory) == "" {
		return fmt.Errorf("storage.directory cannot be empty")
	}

	if config.Export.Format != "json" && config.Export.Format != "yaml" {
		return fmt.Errorf("invalid export format: %s (must be 'json' or 'yaml')", config.Export.Format)
	}

	switch config.Report.Format {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'table', 'csv' or 'json')", config.Report.Format)
	}

	if len([]rune(config.Report.CSVDelimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Report.CSVDelimiter)
	}

	return nil
}

// DataDirectory returns the storage directory with "~" expanded.
func (c *Config) DataDirectory() (string, error) {
	return fileutils.ExpandHome(c.Storage.Directory)
}

// SQLitePath returns the database file, relative paths being resolved
// against the data directory.
func (c *Config) SQLitePath() (string, error) {
	file, err := fileutils.ExpandHome(c.Storage.SQLiteFile)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	dir, err := c.DataDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}

// CSVDelimiter returns the configured report delimiter as a rune.
func (c *Config) CSVDelimiter() rune {
	r := []rune(c.Report.CSVDelimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
