package common

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/pocket-ledger/internal/dateutils"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Display carries the formatting settings for terminal output.
type Display struct {
	Currency   string
	DateFormat string
}

// KindStyle returns the style for amounts of kind.
func KindStyle(kind models.Kind) lipgloss.Style {
	if kind == models.KindExpense {
		return ExpenseStyle
	}
	return IncomeStyle
}

// KindLabel returns the capitalized kind.
func KindLabel(kind models.Kind) string {
	switch kind {
	case models.KindIncome:
		return "Income"
	case models.KindExpense:
		return "Expense"
	default:
		return string(kind)
	}
}

// RenderTransactions writes txs as a table.
func RenderTransactions(w io.Writer, txs []models.Transaction, d Display) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No transactions found."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Date"),
		HeaderStyle.Render("Description"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Type"),
		HeaderStyle.Render("Amount")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 13),
		strings.Repeat("─", 10),
		strings.Repeat("─", 20),
		strings.Repeat("─", 12),
		strings.Repeat("─", 7),
		strings.Repeat("─", 14)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, t := range txs {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			dateutils.FormatDisplay(t.Date, d.DateFormat),
			t.Description,
			t.Category,
			KindLabel(t.Kind),
			KindStyle(t.Kind).Render(models.FormatSigned(t, d.Currency))); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}
	return nil
}

// RenderTotals writes the income, expense and balance summary.
func RenderTotals(w io.Writer, totals models.Totals, d Display) error {
	balanceStyle := IncomeStyle
	if totals.Balance.IsNegative() {
		balanceStyle = ExpenseStyle
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value decimal.Decimal
		style lipgloss.Style
	}{
		{"Income", totals.Income, IncomeStyle},
		{"Expense", totals.Expense, ExpenseStyle},
		{"Balance", totals.Balance, balanceStyle},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n",
			BoldStyle.Render(r.label+":"),
			r.style.Render(models.FormatAmount(r.value, d.Currency))); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table writer: %w", err)
	}
	return nil
}

// RenderCategories writes the category labels of each kind in kinds.
func RenderCategories(w io.Writer, set models.CategorySet, kinds []models.Kind) error {
	for i, kind := range kinds {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, TitleStyle.Render(KindLabel(kind))); err != nil {
			return err
		}
		for _, label := range set.For(kind) {
			if _, err := fmt.Fprintf(w, "  %s\n", KindStyle(kind).Render(label)); err != nil {
				return err
			}
		}
	}
	return nil
}
