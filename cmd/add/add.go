// Package add implements the command that records a transaction
package add

import (
	"fmt"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/dateutils"
	"fjacquet/pocket-ledger/internal/ledger"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = NewCommand()

// NewCommand builds the add command with its flags.
func NewCommand() *cobra.Command {
	var entry ledger.Entry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Long: `Record a new transaction.

The amount is a positive number; whether it adds to or subtracts from the
balance is decided by --type. The date defaults to today.`,
		Example: `  pocket-ledger add -d "Salary" -a 1500 -t income -c Salary
  pocket-ledger add -d "Rent" -a 800 -t expense -c Housing --date 2024-01-06`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, entry)
		},
	}

	cmd.Flags().StringVarP(&entry.Description, "description", "d", "", "What the transaction was for")
	cmd.Flags().StringVarP(&entry.Amount, "amount", "a", "", "Positive amount, e.g. 1500 or 12.50")
	cmd.Flags().StringVarP(&entry.Kind, "type", "t", "", "income or expense")
	cmd.Flags().StringVarP(&entry.Category, "category", "c", "", "Category label (see 'pocket-ledger categories')")
	cmd.Flags().StringVar(&entry.Date, "date", "", "Date as YYYY-MM-DD (default today)")

	return cmd
}

func run(cmd *cobra.Command, entry ledger.Entry) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	cfg := app.GetConfig()
	l := app.GetLedger()

	if entry.Date == "" {
		entry.Date = dateutils.ToISODate(dateutils.TruncateToDate(app.Now()))
	}

	tx, err := l.Add(entry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	display := common.Display{Currency: cfg.Currency.Code, DateFormat: cfg.Display.DateFormat}
	if _, err := fmt.Fprintf(out, "Added #%d %s %s on %s (%s)\n",
		tx.ID,
		tx.Description,
		common.KindStyle(tx.Kind).Render(models.FormatSigned(tx, display.Currency)),
		dateutils.FormatDisplay(tx.Date, display.DateFormat),
		tx.Category); err != nil {
		return err
	}
	if !l.IsKnownCategory(tx.Kind, tx.Category) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), common.WarningStyle.Render(
			fmt.Sprintf("Note: %q is not one of the %s categories.", tx.Category, tx.Kind)))
	}
	common.ReportPersistError(cmd.ErrOrStderr(), l)
	return nil
}
