package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/pocket-ledger/internal/config"
	"fjacquet/pocket-ledger/internal/container"
	"fjacquet/pocket-ledger/internal/export"
	"fjacquet/pocket-ledger/internal/ledger"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
	"fjacquet/pocket-ledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() time.Time {
	return time.Date(2024, 1, 7, 10, 30, 0, 0, time.UTC)
}

func newConfig(t *testing.T, driver, dir string) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.InitializeConfig("")
	require.NoError(t, err)
	cfg.Storage.Driver = driver
	cfg.Storage.Directory = dir
	return cfg
}

func open(t *testing.T, cfg *config.Config) *container.Container {
	t.Helper()
	c, err := container.NewContainerWithOptions(cfg, container.Options{
		Logger: logging.NewMockLogger(),
		Now:    clock,
	})
	require.NoError(t, err)
	return c
}

// TestLedgerFlow_AcrossDrivers records entries, reopens the store, exports
// the ledger and imports the snapshot into the other backend.
func TestLedgerFlow_AcrossDrivers(t *testing.T) {
	drivers := []struct{ from, to string }{
		{store.DriverJSON, store.DriverSQLite},
		{store.DriverSQLite, store.DriverJSON},
	}

	for _, d := range drivers {
		t.Run(d.from+"_to_"+d.to, func(t *testing.T) {
			srcDir := t.TempDir()
			src := open(t, newConfig(t, d.from, srcDir))

			l := src.GetLedger()
			_, err := l.Add(ledger.Entry{Description: "Salary", Amount: "1500", Kind: "income", Category: "Salary", Date: "2024-01-05"})
			require.NoError(t, err)
			rent, err := l.Add(ledger.Entry{Description: "Rent", Amount: "800", Kind: "expense", Category: "Housing", Date: "2024-01-06"})
			require.NoError(t, err)
			_, err = l.Add(ledger.Entry{Description: "Bus", Amount: "4.40", Kind: "expense", Category: "Transport", Date: "2024-01-06"})
			require.NoError(t, err)
			require.True(t, l.Remove(rent.ID))
			require.NoError(t, l.LastPersistError())
			require.NoError(t, src.Close())

			reopened := open(t, newConfig(t, d.from, srcDir))
			defer reopened.Close()
			rl := reopened.GetLedger()
			require.Equal(t, 2, rl.Size())
			assert.Equal(t, ledger.RestoreResult{Loaded: 2}, reopened.RestoreResult())
			assert.True(t, rl.Totals().Balance.Equal(decimal.RequireFromString("1495.60")))

			exp, err := reopened.GetExporter(export.FormatCSV)
			require.NoError(t, err)
			csvPath := filepath.Join(t.TempDir(), export.DefaultFileName(export.FormatCSV, reopened.Now()))
			report := export.Report{Transactions: rl.Snapshot(), Totals: rl.Totals(), Filter: models.FilterAll, GeneratedAt: reopened.Now()}
			require.NoError(t, export.WriteFile(exp, csvPath, report, reopened.GetLogger()))
			assert.True(t, strings.HasSuffix(csvPath, "financas_2024-01-07.csv"))

			data, err := os.ReadFile(csvPath)
			require.NoError(t, err)
			assert.Equal(t,
				"Date,Description,Category,Type,Amount\n"+
					"05/01/2024,Salary,Salary,Income,R$ 1500.00\n"+
					"06/01/2024,Bus,Transport,Expense,R$ 4.40\n",
				string(data))

			dump, err := store.EncodeRecords(models.ToRecords(rl.Snapshot()))
			require.NoError(t, err)
			records, dropped, err := store.DecodeImport(dump)
			require.NoError(t, err)
			require.Zero(t, dropped)

			dst := open(t, newConfig(t, d.to, t.TempDir()))
			defer dst.Close()
			result := dst.GetLedger().Import(records)
			assert.Equal(t, ledger.ImportResult{Added: 2}, result)
			assert.Equal(t, rl.Snapshot(), dst.GetLedger().Snapshot())
			assert.Equal(t, rl.ListFiltered(models.FilterExpense), dst.GetLedger().ListFiltered(models.FilterExpense))
		})
	}
}
