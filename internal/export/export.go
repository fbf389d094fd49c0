// Package export renders ledger views to files: a CSV of the full snapshot
// and a PDF report of a filtered listing with totals.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fjacquet/pocket-ledger/internal/fileutils"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
)

// Supported export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// FilePrefix is the stem of default export file names.
const FilePrefix = "financas"

// Report is the data handed to an exporter.
type Report struct {
	// Transactions to list, in the order they should appear.
	Transactions []models.Transaction
	Totals       models.Totals
	Filter       models.Filter
	GeneratedAt  time.Time
}

// Exporter writes a Report to w.
type Exporter interface {
	Export(w io.Writer, report Report) error
	Format() string
}

// DefaultFileName returns financas_YYYY-MM-DD.<format> for day.
func DefaultFileName(format string, day time.Time) string {
	return fileutils.DatedFileName(FilePrefix, format, day)
}

// WriteFile exports report to path, creating parent directories.
func WriteFile(exp Exporter, path string, report Report, logger logging.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating %s file: %w", strings.ToUpper(exp.Format()), err)
	}

	if err := exp.Export(file, report); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		logger.WithError(err).Error("Export failed", logging.F(logging.FieldOutputFile, path))
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}

	logger.Info("Export written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(report.Transactions)),
		logging.F("format", exp.Format()))
	return nil
}

// kindLabel is the human label for a kind in exported documents.
func kindLabel(k models.Kind) string {
	switch k {
	case models.KindIncome:
		return "Income"
	case models.KindExpense:
		return "Expense"
	default:
		return string(k)
	}
}
