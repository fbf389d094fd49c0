// Package export implements the commands that write the ledger to CSV or PDF
package export

import (
	"fmt"

	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/container"
	"fjacquet/pocket-ledger/internal/export"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = NewCommand()

// NewCommand builds the export command and its csv and pdf subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to CSV or PDF",
		Long: `Export the ledger.

'export csv' writes every transaction in the order it was recorded.
'export pdf' writes a report with the totals and the filtered list.
Files are named financas_YYYY-MM-DD.<ext> unless --output is given.`,
	}
	cmd.AddCommand(newCSVCommand(), newPDFCommand())
	return cmd
}

func newCSVCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export all transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.App()
			if err != nil {
				return err
			}
			l := app.GetLedger()
			report := export.Report{
				Transactions: l.Snapshot(),
				Totals:       l.Totals(),
				Filter:       models.FilterAll,
				GeneratedAt:  app.Now(),
			}
			return write(cmd, app, export.FormatCSV, output, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default financas_YYYY-MM-DD.csv)")
	return cmd
}

func newPDFCommand() *cobra.Command {
	var output string
	var rawFilter string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export a PDF report of the totals and the filtered list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := models.ParseFilter(rawFilter)
			if err != nil {
				return err
			}
			app, err := root.App()
			if err != nil {
				return err
			}
			l := app.GetLedger()
			report := export.Report{
				Transactions: l.ListFiltered(filter),
				Totals:       l.Totals(),
				Filter:       filter,
				GeneratedAt:  app.Now(),
			}
			return write(cmd, app, export.FormatPDF, output, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default financas_YYYY-MM-DD.pdf)")
	cmd.Flags().StringVarP(&rawFilter, "filter", "f", "all", "all, income or expense")
	return cmd
}

func write(cmd *cobra.Command, app *container.Container, format, output string, report export.Report) error {
	exp, err := app.GetExporter(format)
	if err != nil {
		return err
	}
	if output == "" {
		output = export.DefaultFileName(format, report.GeneratedAt)
	}

	logger := app.GetLogger().WithFields(logging.F(logging.FieldOutputFile, output))
	if err := export.WriteFile(exp, output, report, logger); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d transactions to %s\n",
		common.BoldStyle.Render("Exported"), len(report.Transactions), output)
	return err
}
