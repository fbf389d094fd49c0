// Package models provides the data structures shared by the ledger, the
// stores and the exporters.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/pocket-ledger/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a transaction.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Kinds lists every valid Kind in display order.
var Kinds = []Kind{KindIncome, KindExpense}

// ParseKind parses "income" or "expense", ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown kind %q (expected income or expense)", s)
	}
	return k, nil
}

// Valid reports whether k is income or expense.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Sign returns +1 for income and -1 for expense.
func (k Kind) Sign() int {
	if k == KindExpense {
		return -1
	}
	return 1
}

func (k Kind) String() string {
	return string(k)
}

// Transaction is a single validated ledger entry.
// Amount is always a positive magnitude; the sign comes from Kind.
type Transaction struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	Category    string
	Date        time.Time
}

// SignedAmount returns Amount negated for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(int64(t.Kind.Sign())))
}

// IsIncome returns true if the transaction is income
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if the transaction is an expense
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// Record is the persisted form of a Transaction. Fields are raw so that a
// corrupted snapshot can be decoded and then validated entry by entry.
type Record struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Kind        string      `json:"kind"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// ToRecord converts a Transaction to its persisted form.
func (t Transaction) ToRecord() Record {
	return Record{
		ID:          t.ID,
		Description: t.Description,
		Amount:      json.Number(t.Amount.String()),
		Kind:        string(t.Kind),
		Category:    t.Category,
		Date:        dateutils.ToISODate(t.Date),
	}
}

// ToRecords converts a slice of transactions to records, preserving order.
func ToRecords(txs []Transaction) []Record {
	records := make([]Record, len(txs))
	for i, t := range txs {
		records[i] = t.ToRecord()
	}
	return records
}
