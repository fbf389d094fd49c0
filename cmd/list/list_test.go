package list_test

import (
	"encoding/json"
	"strings"
	"testing"

	"fjacquet/pocket-ledger/cmd/list"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/models"
	"fjacquet/pocket-ledger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, records ...models.Record) {
	t.Helper()
	app := testutil.NewApp(t, records...)
	root.SetFactory(app.Factory())
	t.Cleanup(func() { root.SetFactory(nil) })
}

func sample() []models.Record {
	return []models.Record{
		{ID: 10, Description: "Salary", Amount: json.Number("1500"), Kind: "income", Category: "Salary", Date: "2024-01-05"},
		{ID: 11, Description: "Rent", Amount: json.Number("800"), Kind: "expense", Category: "Housing", Date: "2024-01-06"},
	}
}

func TestListCommand_All(t *testing.T) {
	setup(t, sample()...)

	out, err := testutil.Execute(t, list.NewCommand(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Rent")
	assert.Less(t, strings.Index(out, "Rent"), strings.Index(out, "Salary"), "newest first")
	assert.NotContains(t, out, "Balance")
}

func TestListCommand_Filter(t *testing.T) {
	setup(t, sample()...)

	out, err := testutil.Execute(t, list.NewCommand(), "", "--filter", "expense")
	require.NoError(t, err)
	assert.Contains(t, out, "Rent")
	assert.NotContains(t, out, "Salary")
}

func TestListCommand_WithTotals(t *testing.T) {
	setup(t, sample()...)

	out, err := testutil.Execute(t, list.NewCommand(), "", "--totals")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance:")
	assert.Contains(t, out, "R$ 700.00")
}

func TestListCommand_Empty(t *testing.T) {
	setup(t)

	out, err := testutil.Execute(t, list.NewCommand(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found.")
}

func TestListCommand_InvalidFilter(t *testing.T) {
	setup(t)

	_, err := testutil.Execute(t, list.NewCommand(), "", "-f", "transfers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
}
