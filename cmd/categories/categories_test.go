package categories_test

import (
	"testing"

	"fjacquet/pocket-ledger/cmd/categories"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	app := testutil.NewApp(t)
	root.SetFactory(app.Factory())
	t.Cleanup(func() { root.SetFactory(nil) })
}

func TestCategoriesCommand_All(t *testing.T) {
	setup(t)

	out, err := testutil.Execute(t, categories.NewCommand(), "")
	require.NoError(t, err)
	for _, label := range []string{"Income", "Expense", "Salary", "Rent Received", "Bills", "Entertainment"} {
		assert.Contains(t, out, label)
	}
}

func TestCategoriesCommand_ByType(t *testing.T) {
	setup(t)

	out, err := testutil.Execute(t, categories.NewCommand(), "", "--type", "income")
	require.NoError(t, err)
	assert.Contains(t, out, "Freelance")
	assert.NotContains(t, out, "Transport")
}

func TestCategoriesCommand_InvalidType(t *testing.T) {
	setup(t)

	_, err := testutil.Execute(t, categories.NewCommand(), "", "-t", "transfer")
	assert.Error(t, err)
}
