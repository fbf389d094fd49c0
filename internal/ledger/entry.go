package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/pocket-ledger/internal/dateutils"
	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Entry is the raw user input for a new transaction.
type Entry struct {
	Description string
	Amount      string
	Kind        string
	Category    string
	Date        string
}

// validate checks the entry field by field, in the order description, amount,
// kind, category, date, and stops at the first failure. strict additionally
// requires the category to belong to the kind's set.
func (l *Ledger) validate(e Entry, strict bool) (models.Transaction, error) {
	description := strings.TrimSpace(e.Description)
	if description == "" {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldDescription, "", "must not be empty")
	}

	amount, err := parseAmount(e.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	kind, err := models.ParseKind(e.Kind)
	if err != nil {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldKind, e.Kind, "must be income or expense")
	}

	category := strings.TrimSpace(e.Category)
	if category == "" {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldCategory, "", "must not be empty")
	}
	if strict && !l.categories.Contains(kind, category) {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldCategory, category,
			fmt.Sprintf("not one of the %s categories", kind))
	}

	date, err := dateutils.ParseISODate(e.Date)
	if err != nil {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldDate, e.Date, "must be a YYYY-MM-DD calendar date")
	}

	return models.Transaction{
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Date:        date,
	}, nil
}

// fromRecord validates a persisted record. Category membership is never
// enforced here so that tightening the policy cannot discard stored entries.
func (l *Ledger) fromRecord(rec models.Record) (models.Transaction, error) {
	if rec.ID <= 0 {
		return models.Transaction{}, ledgererror.NewValidationError(ledgererror.FieldID, formatID(rec.ID), "must be a positive integer")
	}
	tx, err := l.validate(entryFromRecord(rec), false)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.ID = rec.ID
	return tx, nil
}

func entryFromRecord(rec models.Record) Entry {
	return Entry{
		Description: rec.Description,
		Amount:      rec.Amount.String(),
		Kind:        rec.Kind,
		Category:    rec.Category,
		Date:        rec.Date,
	}
}

// Amounts are bounded so that a huge exponent cannot expand into millions of
// digits when the ledger is summed or persisted.
const (
	maxIntegerDigits = 15
	maxScale         = 8
)

func parseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, ledgererror.NewValidationError(ledgererror.FieldAmount, "", "must not be empty")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ledgererror.NewValidationError(ledgererror.FieldAmount, raw, "not a number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, ledgererror.NewValidationError(ledgererror.FieldAmount, raw, "must be greater than zero")
	}
	if amount.Exponent() < -maxScale {
		return decimal.Zero, ledgererror.NewValidationError(ledgererror.FieldAmount, raw,
			fmt.Sprintf("must have at most %d decimal places", maxScale))
	}
	if int64(amount.NumDigits())+int64(amount.Exponent()) > maxIntegerDigits {
		return decimal.Zero, ledgererror.NewValidationError(ledgererror.FieldAmount, raw,
			fmt.Sprintf("must have at most %d integer digits", maxIntegerDigits))
	}
	return amount, nil
}

func fieldOf(err error) string {
	field, _ := ledgererror.FieldOf(err)
	return field
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
