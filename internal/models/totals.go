package models

import "github.com/shopspring/decimal"

// Totals aggregates a set of transactions. Values are exact; round only when
// presenting them.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// SumTotals computes income, expense and balance over txs in one pass.
// Balance is the sum of signed amounts, which equals Income - Expense.
func SumTotals(txs []Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	for _, t := range txs {
		switch {
		case t.IsIncome():
			totals.Income = totals.Income.Add(t.Amount)
		case t.IsExpense():
			totals.Expense = totals.Expense.Add(t.Amount)
		default:
			continue
		}
		totals.Balance = totals.Balance.Add(t.SignedAmount())
	}
	return totals
}
