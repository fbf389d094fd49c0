// Package remove implements the command that deletes a transaction
package remove

import (
	"fmt"
	"strconv"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = NewCommand()

// NewCommand builds the remove command with its flags.
func NewCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a transaction by id",
		Long: `Delete the transaction with the given id.

Ids are shown by 'pocket-ledger list'. You are asked to confirm unless
--yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func run(cmd *cobra.Command, rawID string, yes bool) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q: must be an integer", rawID)
	}

	app, err := root.App()
	if err != nil {
		return err
	}
	l := app.GetLedger()
	out := cmd.OutOrStdout()

	tx, ok := l.Get(id)
	if !ok {
		_, err := fmt.Fprintf(out, "No transaction with id %d.\n", id)
		return err
	}

	if !yes {
		p := common.NewPrompter(cmd.InOrStdin(), out)
		confirmed, err := p.Confirm(fmt.Sprintf("Delete %q (%s)?", tx.Description, tx.Category))
		if err != nil {
			return err
		}
		if !confirmed {
			_, err := fmt.Fprintln(out, "Canceled.")
			return err
		}
	}

	if l.Remove(id) {
		if _, err := fmt.Fprintf(out, "Removed #%d.\n", id); err != nil {
			return err
		}
	}
	common.ReportPersistError(cmd.ErrOrStderr(), l)
	return nil
}
