package config

import (
	"os"
	"path/filepath"

	"fjacquet/event-budget/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the first .env file found in the current
// directory or its parent. Variables already set in the environment win.
// It returns the file that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

// NewLogger builds the application logger from the configuration.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapterWithOutput(config.Log.Level, config.Log.Format, os.Stderr)
}
