// Package testutil provides helpers for exercising commands against an
// isolated, in-memory ledger.
package testutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"fjacquet/pocket-ledger/internal/config"
	"fjacquet/pocket-ledger/internal/container"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
	"fjacquet/pocket-ledger/internal/store"

	"github.com/spf13/cobra"
)

// Clock is the instant test containers are frozen at.
var Clock = time.Date(2024, 1, 7, 10, 30, 0, 0, time.UTC)

// App is a container backed by a MemoryStore.
type App struct {
	Container *container.Container
	Store     *store.MemoryStore
	Logger    *logging.MockLogger
	Config    *config.Config
}

// NewApp builds a container with default configuration, a frozen clock and a
// MemoryStore preloaded with records. HOME and the storage directory point
// at temporary directories.
func NewApp(t *testing.T, records ...models.Record) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.InitializeConfig("")
	if err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}
	cfg.Storage.Directory = t.TempDir()
	return NewAppWithConfig(t, cfg, records...)
}

// NewAppWithConfig is NewApp with an explicit configuration.
func NewAppWithConfig(t *testing.T, cfg *config.Config, records ...models.Record) *App {
	t.Helper()

	mem := store.NewMemoryStore(records...)
	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithOptions(cfg, container.Options{
		Logger: logger,
		Store:  mem,
		Now:    func() time.Time { return Clock },
	})
	if err != nil {
		t.Fatalf("failed to create container: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return &App{Container: c, Store: mem, Logger: logger, Config: cfg}
}

// Factory returns a container factory that always yields a.Container.
func (a *App) Factory() func() (*container.Container, error) {
	return func() (*container.Container, error) { return a.Container, nil }
}

// Execute runs cmd with args, feeding stdin, and returns what it printed.
func Execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
