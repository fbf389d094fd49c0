package root_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/config"
	"fjacquet/pocket-ledger/internal/container"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/store"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pocket-ledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal finance ledger")
	assert.NotNil(t, root.Cmd.RunE)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "storage-driver", "data-dir"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()

	cfg, err := root.LoadConfig(root.GlobalFlags{
		LogLevel:      "debug",
		StorageDriver: "sqlite",
		DataDir:       dataDir,
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, dataDir, cfg.Storage.Directory)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := root.LoadConfig(root.GlobalFlags{StorageDriver: "mongo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid storage driver")
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency:\n  code: EUR\n"), 0600))

	cfg, err := root.LoadConfig(root.GlobalFlags{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency.Code)
}

func TestApp_UsesFactoryOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.InitializeConfig("")
	require.NoError(t, err)

	calls := 0
	mem := store.NewMemoryStore()
	root.SetFactory(func() (*container.Container, error) {
		calls++
		return container.NewContainerWithOptions(cfg, container.Options{Logger: logging.NewMockLogger(), Store: mem})
	})
	t.Cleanup(func() { root.SetFactory(nil) })

	first, err := root.App()
	require.NoError(t, err)
	second, err := root.App()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	root.Close()
	assert.True(t, mem.Closed)

	_, err = root.App()
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExecute_ClosesContainerWhenCommandFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.InitializeConfig("")
	require.NoError(t, err)

	mem := store.NewMemoryStore()
	root.SetFactory(func() (*container.Container, error) {
		return container.NewContainerWithOptions(cfg, container.Options{Logger: logging.NewMockLogger(), Store: mem})
	})

	failing := &cobra.Command{
		Use: "failing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.App(); err != nil {
				return err
			}
			return errors.New("boom")
		},
	}
	root.Cmd.AddCommand(failing)
	root.Cmd.SetArgs([]string{"failing"})
	t.Cleanup(func() {
		root.Cmd.RemoveCommand(failing)
		root.Cmd.SetArgs(nil)
		root.SetFactory(nil)
	})

	err = root.Execute()
	assert.EqualError(t, err, "boom")
	assert.True(t, mem.Closed)
}

func TestApp_FactoryError(t *testing.T) {
	root.SetFactory(func() (*container.Container, error) {
		return nil, errors.New("no storage")
	})
	t.Cleanup(func() { root.SetFactory(nil) })

	_, err := root.App()
	assert.EqualError(t, err, "no storage")
}
