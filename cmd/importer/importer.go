// Package importer implements the command that merges a JSON export into the ledger
package importer

import (
	"fmt"
	"os"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = NewCommand()

// NewCommand builds the import command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a JSON export",
		Long: `Import transactions from a JSON array.

Both the pocket-ledger snapshot format and the browser app's localStorage
export (descricao, valor, tipo, categoria, data) are accepted. Imported
entries keep their id unless it is already taken.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
}

func run(cmd *cobra.Command, path string) error {
	app, err := root.App()
	if err != nil {
		return err
	}
	logger := app.GetLogger().WithFields(logging.F(logging.FieldInputFile, path))

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied import file
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	records, undecodable, err := store.DecodeImport(data)
	if err != nil {
		return fmt.Errorf("failed to parse import file %s: %w", path, err)
	}
	if undecodable > 0 {
		logger.Warn("Skipped undecodable entries", logging.F(logging.FieldDropped, undecodable))
	}

	l := app.GetLedger()
	result := l.Import(records)

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Imported %d transactions from %s.\n", result.Added, path); err != nil {
		return err
	}
	if skipped := result.Dropped + undecodable; skipped > 0 {
		_, _ = fmt.Fprintln(out, common.WarningStyle.Render(fmt.Sprintf("Skipped %d invalid entries.", skipped)))
	}
	if result.Reissued > 0 {
		_, _ = fmt.Fprintf(out, "Assigned new ids to %d entries.\n", result.Reissued)
	}
	if result.Added > 0 {
		common.ReportPersistError(cmd.ErrOrStderr(), l)
	}
	return nil
}
