package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/pocket-ledger/internal/dateutils"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/gocarina/gocsv"
)

// csvRow is one exported line.
type csvRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
}

// CSVOptions controls the CSV layout.
type CSVOptions struct {
	Delimiter      rune
	IncludeHeaders bool
	Currency       string
	DateFormat     string
}

// DefaultCSVOptions returns comma-separated output with headers in BRL.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:      ',',
		IncludeHeaders: true,
		Currency:       models.DefaultCurrency,
		DateFormat:     dateutils.DateLayoutBrazilian,
	}
}

// CSVExporter writes one row per transaction in the order given.
type CSVExporter struct {
	opts   CSVOptions
	logger logging.Logger
}

// NewCSVExporter creates a CSVExporter.
func NewCSVExporter(opts CSVOptions, logger logging.Logger) *CSVExporter {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &CSVExporter{opts: opts, logger: logger}
}

// Format returns "csv".
func (e *CSVExporter) Format() string {
	return FormatCSV
}

// Export writes report.Transactions as CSV.
func (e *CSVExporter) Export(w io.Writer, report Report) error {
	rows := make([]csvRow, len(report.Transactions))
	for i, t := range report.Transactions {
		rows[i] = csvRow{
			Date:        dateutils.FormatDisplay(t.Date, e.opts.DateFormat),
			Description: t.Description,
			Category:    t.Category,
			Type:        kindLabel(t.Kind),
			Amount:      models.FormatAmount(t.Amount, e.opts.Currency),
		}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.opts.Delimiter
	out := gocsv.NewSafeCSVWriter(csvWriter)

	e.logger.Debug("Writing CSV",
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDelimiter, string(e.opts.Delimiter)))

	if len(rows) == 0 {
		return e.writeHeaderOnly(out)
	}

	var err error
	if e.opts.IncludeHeaders {
		err = gocsv.MarshalCSV(rows, out)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, out)
	}
	if err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// writeHeaderOnly emits the header line of an empty export.
func (e *CSVExporter) writeHeaderOnly(out *gocsv.SafeCSVWriter) error {
	if !e.opts.IncludeHeaders {
		return nil
	}
	if err := out.Write([]string{"Date", "Description", "Category", "Type", "Amount"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	out.Flush()
	return out.Error()
}
