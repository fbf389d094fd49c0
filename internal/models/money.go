package models

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency the original ledger was kept in.
const DefaultCurrency = "BRL"

// IsKnownCurrency reports whether code is an ISO 4217 code known to go-money.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// CurrencyMarker returns the display grapheme for code ("R$" for BRL).
// Unknown codes are returned upper-cased as their own marker.
func CurrencyMarker(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil || cur.Grapheme == "" {
		return code
	}
	return cur.Grapheme
}

// FormatAmount renders amount with two decimals behind the currency marker,
// e.g. "R$ 1500.00". Rounding happens here and only here.
func FormatAmount(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", CurrencyMarker(currency), amount.StringFixed(2))
}

// FormatSigned renders a transaction amount prefixed with + or -.
func FormatSigned(t Transaction, currency string) string {
	sign := "+"
	if t.IsExpense() {
		sign = "-"
	}
	return fmt.Sprintf("%s %s", sign, FormatAmount(t.Amount, currency))
}
