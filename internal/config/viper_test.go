package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points HOME at an empty directory and clears every variable
// the configuration reads.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"EVENT_BUDGET_LOG_LEVEL", "EVENT_BUDGET_LOG_FORMAT",
		"EVENT_BUDGET_STORAGE_BACKEND", "EVENT_BUDGET_STORAGE_DIRECTORY", "EVENT_BUDGET_STORAGE_SQLITE_FILE",
		"EVENT_BUDGET_EXPORT_FORMAT", "EVENT_BUDGET_EXPORT_FILE_NAME",
		"EVENT_BUDGET_REPORT_FORMAT", "EVENT_BUDGET_REPORT_CSV_DELIMITER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestInitializeConfig_Defaults(t *testing.T) {
	home := isolateEnv(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "file", config.Storage.Backend)
	assert.Equal(t, "~/.event-budget", config.Storage.Directory)
	assert.Equal(t, "event-budget.db", config.Storage.SQLiteFile)
	assert.Equal(t, "json", config.Export.Format)
	assert.Equal(t, "event-budget-backup", config.Export.FileName)
	assert.Equal(t, "table", config.Report.Format)
	assert.Equal(t, ',', config.CSVDelimiter())

	dir, err := config.DataDirectory()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".event-budget"), dir)

	db, err := config.SQLitePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".event-budget", "event-budget.db"), db)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolateEnv(t)
	t.Setenv("EVENT_BUDGET_LOG_LEVEL", "debug")
	t.Setenv("EVENT_BUDGET_LOG_FORMAT", "json")
	t.Setenv("EVENT_BUDGET_STORAGE_BACKEND", "sqlite")
	t.Setenv("EVENT_BUDGET_STORAGE_SQLITE_FILE", "/srv/budget.db")
	t.Setenv("EVENT_BUDGET_REPORT_CSV_DELIMITER", ";")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "sqlite", config.Storage.Backend)
	assert.Equal(t, ';', config.CSVDelimiter())

	db, err := config.SQLitePath()
	require.NoError(t, err)
	assert.Equal(t, "/srv/budget.db", db)
}

func TestInitializeConfig_HomeConfigFile(t *testing.T) {
	home := isolateEnv(t)
	dir := filepath.Join(home, ".event-budget")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
log:
  level: warn
report:
  format: csv
`), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "csv", config.Report.Format)
	assert.Equal(t, "text", config.Log.Format, "unset keys keep defaults")
}

func TestInitializeConfigWithFile_Precedence(t *testing.T) {
	isolateEnv(t)
	configFile := filepath.Join(t.TempDir(), "budget.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
log:
  level: error
storage:
  backend: sqlite
  directory: /data/budget
export:
  format: yaml
`), 0600))
	t.Setenv("EVENT_BUDGET_LOG_LEVEL", "debug")

	config, err := InitializeConfigWithFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level, "environment overrides the file")
	assert.Equal(t, "sqlite", config.Storage.Backend)
	assert.Equal(t, "/data/budget", config.Storage.Directory)
	assert.Equal(t, "yaml", config.Export.Format)

	db, err := config.SQLitePath()
	require.NoError(t, err)
	assert.Equal(t, "/data/budget/event-budget.db", db)
}

func TestInitializeConfigWithFile_MissingFile(t *testing.T) {
	isolateEnv(t)
	_, err := InitializeConfigWithFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{name: "log level", env: map[string]string{"EVENT_BUDGET_LOG_LEVEL": "chatty"}, errMsg: "invalid log level"},
		{name: "log format", env: map[string]string{"EVENT_BUDGET_LOG_FORMAT": "xml"}, errMsg: "invalid log format"},
		{name: "backend", env: map[string]string{"EVENT_BUDGET_STORAGE_BACKEND": "postgres"}, errMsg: "invalid storage backend"},
		{name: "export format", env: map[string]string{"EVENT_BUDGET_EXPORT_FORMAT": "xml"}, errMsg: "invalid export format"},
		{name: "report format", env: map[string]string{"EVENT_BUDGET_REPORT_FORMAT": "pdf"}, errMsg: "invalid report format"},
		{name: "delimiter", env: map[string]string{"EVENT_BUDGET_REPORT_CSV_DELIMITER": ";;"}, errMsg: "CSV delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := InitializeConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EVENT_BUDGET_TEST_VALUE=from-dotenv\n"), 0600))
	t.Setenv("EVENT_BUDGET_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("EVENT_BUDGET_TEST_VALUE"))

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-dotenv", os.Getenv("EVENT_BUDGET_TEST_VALUE"))
}

func TestNewLogger(t *testing.T) {
	isolateEnv(t)
	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.NotNil(t, NewLogger(config))
}
