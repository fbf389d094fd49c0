// Package clear implements the command that deletes every transaction
package clear

import (
	"fmt"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the clear command
var Cmd = NewCommand()

// NewCommand builds the clear command with its flags.
func NewCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all transactions",
		Long: `Delete every transaction in the ledger.

This cannot be undone. You are asked to confirm twice unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip both confirmation prompts")
	return cmd
}

func run(cmd *cobra.Command, yes bool) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	l := app.GetLedger()
	out := cmd.OutOrStdout()

	if l.Size() == 0 {
		_, err := fmt.Fprintln(out, "No transactions found. Nothing to clear.")
		return err
	}

	if !yes {
		p := common.NewPrompter(cmd.InOrStdin(), out)
		questions := []string{
			fmt.Sprintf("This will delete all %d transactions. Continue?", l.Size()),
			"Are you really sure? This cannot be undone.",
		}
		for _, q := range questions {
			confirmed, err := p.Confirm(common.WarningStyle.Render(q))
			if err != nil {
				return err
			}
			if !confirmed {
				_, err := fmt.Fprintln(out, "Canceled.")
				return err
			}
		}
	}

	n := l.Clear()
	if _, err := fmt.Fprintf(out, "Deleted %d transactions.\n", n); err != nil {
		return err
	}
	common.ReportPersistError(cmd.ErrOrStderr(), l)
	return nil
}
