package root_test

import (
	"context"
	"testing"

	"fjacquet/event-budget/cmd/root"
	"fjacquet/event-budget/internal/config"
	"fjacquet/event-budget/internal/container"
	"fjacquet/event-budget/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "event-budget", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "budget")
	assert.Contains(t, root.Cmd.Long, "event-budget tracks the expenses")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	for _, name := range []string{"config", "log-level", "log-format", "data-dir", "backend"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "d", root.Cmd.PersistentFlags().Lookup("data-dir").Shorthand)
	assert.Equal(t, "b", root.Cmd.PersistentFlags().Lookup("backend").Shorthand)
}

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name  string
		flags root.CommonFlags
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "no flags keeps config",
			flags: root.CommonFlags{},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "file", cfg.Storage.Backend)
				assert.Equal(t, "/data", cfg.Storage.Directory)
			},
		},
		{
			name:  "all flags override",
			flags: root.CommonFlags{LogLevel: "debug", LogFormat: "json", DataDir: "/tmp/x", Backend: "sqlite"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, "/tmp/x", cfg.Storage.Directory)
				assert.Equal(t, "sqlite", cfg.Storage.Backend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Log.Level = "info"
			cfg.Log.Format = "text"
			cfg.Storage.Backend = "file"
			cfg.Storage.Directory = "/data"

			root.ApplyFlagOverrides(cfg, tt.flags)
			tt.check(t, cfg)
		})
	}
}

func TestContainerLifecycle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Storage.Backend = "memory"
	cfg.Storage.Directory = t.TempDir()
	cfg.Report.CSVDelimiter = ","

	c, err := container.NewContainerWithLogger(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)

	root.SetContainer(c)
	got, err := root.GetContainer(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, root.CloseContainer())
	require.NoError(t, root.CloseContainer())
}
