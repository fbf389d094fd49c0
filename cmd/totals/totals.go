// Package totals implements the command that prints the balance summary
package totals

import (
	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the totals command
var Cmd = NewCommand()

// NewCommand builds the totals command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "totals",
		Aliases: []string{"balance"},
		Short:   "Show total income, total expense and the balance",
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	cfg := app.GetConfig()
	display := common.Display{Currency: cfg.Currency.Code, DateFormat: cfg.Display.DateFormat}
	return common.RenderTotals(cmd.OutOrStdout(), app.GetLedger().Totals(), display)
}
