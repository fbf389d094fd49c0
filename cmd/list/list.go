// Package list implements the command that shows transactions
package list

import (
	"fmt"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = NewCommand()

// NewCommand builds the list command with its flags.
func NewCommand() *cobra.Command {
	var filter string
	var showTotals bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions, newest first",
		Long: `List transactions sorted by date, newest first.

Use --filter to show only income or only expense entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, filter, showTotals)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, income or expense")
	cmd.Flags().BoolVar(&showTotals, "totals", false, "Print the totals summary after the list")
	return cmd
}

func run(cmd *cobra.Command, rawFilter string, showTotals bool) error {
	filter, err := models.ParseFilter(rawFilter)
	if err != nil {
		return err
	}

	app, err := root.App()
	if err != nil {
		return err
	}
	cfg := app.GetConfig()
	l := app.GetLedger()
	display := common.Display{Currency: cfg.Currency.Code, DateFormat: cfg.Display.DateFormat}
	out := cmd.OutOrStdout()

	if err := common.RenderTransactions(out, l.ListFiltered(filter), display); err != nil {
		return err
	}
	if !showTotals {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return common.RenderTotals(out, l.Totals(), display)
}
