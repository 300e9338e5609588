// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"sync"

	"fjacquet/event-budget/internal/config"
	"fjacquet/event-budget/internal/container"
	"fjacquet/event-budget/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	DataDir    string
	Backend    string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Config is the configuration loaded before any command runs
	Config *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "event-budget",
		Short: "A CLI tool to track the budget, payments and guests of an event.",
		Long: `event-budget tracks the expenses of an event by category together with
the guest list, and derives balances, progress and reports from them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to event-budget!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile, err := config.LoadEnv(); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}

			cfg, err := config.InitializeConfigWithFile(SharedFlags.ConfigFile)
			if err != nil {
				return err
			}
			ApplyFlagOverrides(cfg, SharedFlags)

			Config = cfg
			Log = config.NewLogger(cfg)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return CloseContainer()
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	mu     sync.Mutex
	active *container.Container
)

// Init initializes the root command and all flags
func Init() {
	if Cmd.PersistentFlags().Lookup("config") != nil {
		return
	}
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.event-budget, .event-budget and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataDir, "data-dir", "d", "", "Directory holding the event records")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Backend, "backend", "b", "", "Storage backend (file, sqlite or memory)")
}

// ApplyFlagOverrides copies the flags that were given onto cfg.
func ApplyFlagOverrides(cfg *config.Config, flags CommonFlags) {
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
	if flags.DataDir != "" {
		cfg.Storage.Directory = flags.DataDir
	}
	if flags.Backend != "" {
		cfg.Storage.Backend = flags.Backend
	}
}

// GetContainer returns the application container, creating it and loading
// the records on first use.
func GetContainer(ctx context.Context) (*container.Container, error) {
	mu.Lock()
	defer mu.Unlock()

	if active != nil {
		return active, nil
	}
	if Config == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	c, err := container.NewContainerWithLogger(ctx, Config, Log)
	if err != nil {
		return nil, err
	}
	active = c
	return active, nil
}

// SetContainer installs c as the application container.
func SetContainer(c *container.Container) {
	mu.Lock()
	defer mu.Unlock()
	active = c
}

// CloseContainer closes the application container if one was created.
func CloseContainer() error {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return nil
	}
	err := active.Close()
	active = nil
	return err
}
