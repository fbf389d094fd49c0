package export

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/pocket-ledger/internal/dateutils"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/go-pdf/fpdf"
)

// PDFOptions controls the PDF report.
type PDFOptions struct {
	Title string
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	Currency    string
	DateFormat  string
}

// DefaultPDFOptions returns an A4 portrait report in BRL.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Title:       "Personal Finance Report",
		Orientation: "P",
		Currency:    models.DefaultCurrency,
		DateFormat:  dateutils.DateLayoutBrazilian,
	}
}

// PDFExporter renders a title, the export date, a totals summary and a table
// of the report's transactions on A4 pages.
type PDFExporter struct {
	opts   PDFOptions
	logger logging.Logger
}

// NewPDFExporter creates a PDFExporter.
func NewPDFExporter(opts PDFOptions, logger logging.Logger) *PDFExporter {
	opts.Orientation = strings.ToUpper(opts.Orientation)
	if opts.Orientation != "L" {
		opts.Orientation = "P"
	}
	if opts.Title == "" {
		opts.Title = DefaultPDFOptions().Title
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &PDFExporter{opts: opts, logger: logger}
}

// Format returns "pdf".
func (e *PDFExporter) Format() string {
	return FormatPDF
}

type column struct {
	header string
	width  float64
	align  string
}

const (
	fontFamily = "Helvetica"
	rowHeight  = 7.0
	margin     = 15.0
)

// columns scales the table to the printable width of the page.
func (e *PDFExporter) columns(pageWidth float64) []column {
	cols := []column{
		{header: "Date", width: 25, align: "L"},
		{header: "Description", width: 65, align: "L"},
		{header: "Category", width: 35, align: "L"},
		{header: "Type", width: 22, align: "L"},
		{header: "Amount", width: 33, align: "R"},
	}
	var total float64
	for _, c := range cols {
		total += c.width
	}
	scale := (pageWidth - 2*margin) / total
	for i := range cols {
		cols[i].width *= scale
	}
	return cols
}

// Export writes the PDF document to w.
func (e *PDFExporter) Export(w io.Writer, report Report) error {
	pdf := fpdf.New(e.opts.Orientation, "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	if !report.GeneratedAt.IsZero() {
		pdf.SetCreationDate(report.GeneratedAt)
	}
	pdf.SetTitle(e.opts.Title, true)

	// Core fonts are cp1252; translate so accented descriptions render.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	cols := e.columns(pageWidth)

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(e.opts.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	exported := dateutils.FormatDisplay(report.GeneratedAt, e.opts.DateFormat)
	pdf.CellFormat(0, 6, tr("Exported on "+exported), "", 1, "C", false, 0, "")
	if report.Filter != "" && report.Filter != models.FilterAll {
		pdf.CellFormat(0, 6, tr("Filter: "+report.Filter.String()), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	e.writeSummary(pdf, tr, report.Totals)
	pdf.Ln(6)

	header := func() {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range cols {
			pdf.CellFormat(c.width, rowHeight, c.header, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 9)
	}
	header()

	if len(report.Transactions) == 0 {
		pdf.CellFormat(0, rowHeight, "No transactions", "1", 1, "C", false, 0, "")
	}

	_, pageHeight := pdf.GetPageSize()
	for _, t := range report.Transactions {
		if pdf.GetY()+rowHeight > pageHeight-margin {
			pdf.AddPage()
			header()
		}
		cells := []string{
			dateutils.FormatDisplay(t.Date, e.opts.DateFormat),
			t.Description,
			t.Category,
			kindLabel(t.Kind),
			models.FormatSigned(t, e.opts.Currency),
		}
		e.setKindColor(pdf, t.Kind)
		for i, c := range cols {
			text := fitText(pdf, tr(cells[i]), c.width-2)
			pdf.CellFormat(c.width, rowHeight, text, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("error rendering PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF: %w", err)
	}

	e.logger.Debug("PDF rendered",
		logging.F(logging.FieldCount, len(report.Transactions)),
		logging.F(logging.FieldFilter, report.Filter.String()))
	return nil
}

func (e *PDFExporter) writeSummary(pdf *fpdf.Fpdf, tr func(string) string, totals models.Totals) {
	lines := []struct {
		label string
		value string
	}{
		{"Income", models.FormatAmount(totals.Income, e.opts.Currency)},
		{"Expense", models.FormatAmount(totals.Expense, e.opts.Currency)},
		{"Balance", models.FormatAmount(totals.Balance, e.opts.Currency)},
	}
	for _, l := range lines {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(30, 7, l.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.CellFormat(0, 7, tr(l.value), "", 1, "L", false, 0, "")
	}
}

func (e *PDFExporter) setKindColor(pdf *fpdf.Fpdf, kind models.Kind) {
	switch kind {
	case models.KindIncome:
		pdf.SetTextColor(0, 128, 0)
	case models.KindExpense:
		pdf.SetTextColor(192, 0, 0)
	default:
		pdf.SetTextColor(0, 0, 0)
	}
}

// fitText shortens s with an ellipsis until it fits width. s is already
// translated to the single-byte font encoding.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for n := len(s) - 1; n > 0; n-- {
		candidate := s[:n] + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
