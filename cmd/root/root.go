// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/pocket-ledger/internal/config"
	"fjacquet/pocket-ledger/internal/container"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags that override configuration.
type GlobalFlags struct {
	ConfigFile    string
	LogLevel      string
	StorageDriver string
	DataDir       string
}

// Factory builds the application container for a command invocation.
type Factory func() (*container.Container, error)

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pocket-ledger",
		Short: "A personal finance ledger for the command line.",
		Long: `pocket-ledger records income and expense entries, shows running totals,
filters by type, and exports the ledger as CSV or PDF.

Data is kept in a local JSON file or SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Flags holds the parsed persistent flags
	Flags = GlobalFlags{}

	factory Factory = DefaultFactory
	app     *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default searches $HOME/.pocket-ledger, .pocket-ledger and .)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.StorageDriver, "storage-driver", "", "Storage backend (json or sqlite)")
	Cmd.PersistentFlags().StringVar(&Flags.DataDir, "data-dir", "", "Directory holding the ledger data")
}

// Execute runs the root command and closes the container afterwards, also
// when the command failed.
func Execute() error {
	defer Close()
	return Cmd.Execute()
}

// LoadConfig reads the configuration and applies flag overrides.
func LoadConfig(flags GlobalFlags) (*config.Config, error) {
	cfg, err := config.InitializeConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.StorageDriver != "" {
		cfg.Storage.Driver = flags.StorageDriver
	}
	if flags.DataDir != "" {
		cfg.Storage.Directory = flags.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultFactory builds the container from configuration and Flags.
func DefaultFactory() (*container.Container, error) {
	cfg, err := LoadConfig(Flags)
	if err != nil {
		return nil, err
	}
	return container.NewContainer(cfg)
}

// App returns the container for the running command, building it on first use.
func App() (*container.Container, error) {
	if app != nil {
		return app, nil
	}
	c, err := factory()
	if err != nil {
		return nil, err
	}
	app = c
	return app, nil
}

// SetFactory replaces the container factory and drops any built container.
// A nil factory restores DefaultFactory.
func SetFactory(f Factory) {
	Close()
	if f == nil {
		f = DefaultFactory
	}
	factory = f
}

// Close releases the container, if one was built.
func Close() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		app.GetLogger().WithError(err).Warn("Failed to close container")
	}
	app = nil
}
