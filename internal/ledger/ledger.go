// Package ledger implements the transaction ledger: the owned collection of
// income and expense entries, its validation rules, and the derived views
// (filtered listings and totals) the presentation and export layers read.
//
// A Ledger is not safe for concurrent use. Every operation runs to completion
// and, when it mutates state, issues the persistence write before returning.
package ledger

import (
	"errors"
	"slices"
	"time"

	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
)

// Persister is the persistence port. Save receives the full snapshot, in
// insertion order, after every successful mutation.
type Persister interface {
	Save(records []models.Record) error
}

// Options tunes a Ledger. The zero value uses the default categories, the
// advisory category policy and the wall clock.
type Options struct {
	Categories     models.CategorySet
	CategoryPolicy string
	Now            func() time.Time
}

// Ledger owns the transactions in insertion order.
type Ledger struct {
	txs        []models.Transaction
	persister  Persister
	logger     logging.Logger
	categories models.CategorySet
	strict     bool
	ids        *idGenerator

	lastPersistErr error
}

// RestoreResult reports how a snapshot was applied.
type RestoreResult struct {
	Loaded  int
	Dropped int
}

// ImportResult reports how an external dump was merged.
type ImportResult struct {
	Added    int
	Dropped  int
	Reissued int
}

// New creates an empty Ledger. A nil persister disables persistence and a nil
// logger discards log output.
func New(persister Persister, logger logging.Logger, opts Options) *Ledger {
	if logger == nil {
		logger = logging.Nop()
	}
	categories := opts.Categories
	if categories.IsEmpty() {
		categories = models.DefaultCategories()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		persister:  persister,
		logger:     logger,
		categories: categories,
		strict:     opts.CategoryPolicy == models.CategoryPolicyStrict,
		ids:        &idGenerator{now: now},
	}
}

// Add validates entry, appends it with a fresh id, persists the snapshot and
// returns the created transaction. On a validation failure nothing changes
// and the error is a *ledgererror.ValidationError naming the first bad field.
func (l *Ledger) Add(entry Entry) (models.Transaction, error) {
	tx, err := l.validate(entry, l.strict)
	if err != nil {
		l.logger.Debug("Rejected transaction",
			logging.F(logging.FieldField, fieldOf(err)),
			logging.F(logging.FieldReason, err.Error()))
		return models.Transaction{}, err
	}
	if !l.categories.Contains(tx.Kind, tx.Category) {
		l.logger.Warn("Category is not in the configured set",
			logging.F(logging.FieldKind, tx.Kind.String()),
			logging.F(logging.FieldCategory, tx.Category))
	}

	tx.ID = l.ids.next()
	l.txs = append(l.txs, tx)
	l.persist("add")

	l.logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldKind, tx.Kind.String()),
		logging.F(logging.FieldCategory, tx.Category))
	return tx, nil
}

// Remove deletes the transaction with id. It returns false, and does not
// persist, when no such transaction exists.
func (l *Ledger) Remove(id int64) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		l.logger.Debug("Remove of unknown transaction", logging.F(logging.FieldTransactionID, id))
		return false
	}
	l.txs = slices.Delete(l.txs, idx, idx+1)
	l.persist("remove")

	l.logger.Info("Transaction removed", logging.F(logging.FieldTransactionID, id))
	return true
}

// Clear removes every transaction, persists the empty snapshot and returns how
// many were removed.
func (l *Ledger) Clear() int {
	n := len(l.txs)
	l.txs = nil
	l.persist("clear")

	l.logger.Info("Ledger cleared", logging.F(logging.FieldCount, n))
	return n
}

// ListFiltered returns a new slice of the transactions matching filter,
// newest date first. Entries sharing a date keep their insertion order.
func (l *Ledger) ListFiltered(filter models.Filter) []models.Transaction {
	out := make([]models.Transaction, 0, len(l.txs))
	for _, t := range l.txs {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// Totals sums income and expense over the whole ledger.
func (l *Ledger) Totals() models.Totals {
	return models.SumTotals(l.txs)
}

// Snapshot returns a copy of every transaction in insertion order.
func (l *Ledger) Snapshot() []models.Transaction {
	return slices.Clone(l.txs)
}

// Size returns the number of transactions.
func (l *Ledger) Size() int {
	return len(l.txs)
}

// Get returns the transaction with id.
func (l *Ledger) Get(id int64) (models.Transaction, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, false
	}
	return l.txs[idx], true
}

// Categories returns the category reference data the ledger validates against.
func (l *Ledger) Categories() models.CategorySet {
	return l.categories
}

// IsKnownCategory reports whether category belongs to kind's configured set.
func (l *Ledger) IsKnownCategory(kind models.Kind, category string) bool {
	return l.categories.Contains(kind, category)
}

// LastPersistError returns the error from the most recent persistence write,
// or nil if it succeeded. Mutations report success even when it is non-nil.
func (l *Ledger) LastPersistError() error {
	return l.lastPersistErr
}

// Restore replaces the ledger's contents with records. Each record is
// validated like Add; records that fail, or reuse an id already restored, are
// dropped and logged. Restore does not persist.
func (l *Ledger) Restore(records []models.Record) RestoreResult {
	txs := make([]models.Transaction, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	ids := &idGenerator{now: l.ids.now}
	var result RestoreResult

	for i, rec := range records {
		tx, err := l.fromRecord(rec)
		if err == nil {
			if _, dup := seen[rec.ID]; dup {
				err = ledgererror.NewValidationError(ledgererror.FieldID, formatID(rec.ID), "duplicate id")
			}
		}
		if err != nil {
			result.Dropped++
			l.logger.WithError(err).Warn("Dropping invalid persisted transaction",
				logging.F("index", i),
				logging.F(logging.FieldTransactionID, rec.ID))
			continue
		}
		seen[tx.ID] = struct{}{}
		ids.observe(tx.ID)
		txs = append(txs, tx)
	}

	l.txs = txs
	l.ids = ids
	result.Loaded = len(txs)

	l.logger.Info("Ledger restored",
		logging.F(logging.FieldCount, result.Loaded),
		logging.F(logging.FieldDropped, result.Dropped))
	return result
}

// Import appends records from an external dump. A record keeps its id when
// that id is positive and unused; otherwise it gets a fresh one. The snapshot
// is persisted once if anything was added.
func (l *Ledger) Import(records []models.Record) ImportResult {
	var result ImportResult
	for i, rec := range records {
		entry := entryFromRecord(rec)
		tx, err := l.validate(entry, l.strict)
		if err != nil {
			result.Dropped++
			l.logger.WithError(err).Warn("Skipping invalid imported transaction", logging.F("index", i))
			continue
		}
		if rec.ID > 0 && l.indexOf(rec.ID) < 0 {
			tx.ID = rec.ID
			l.ids.observe(rec.ID)
		} else {
			tx.ID = l.ids.next()
			result.Reissued++
		}
		l.txs = append(l.txs, tx)
		result.Added++
	}

	if result.Added > 0 {
		l.persist("import")
	}
	l.logger.Info("Import finished",
		logging.F(logging.FieldCount, result.Added),
		logging.F(logging.FieldDropped, result.Dropped))
	return result
}

func (l *Ledger) indexOf(id int64) int {
	return slices.IndexFunc(l.txs, func(t models.Transaction) bool { return t.ID == id })
}

// persist writes the snapshot. A failure is kept for LastPersistError and
// logged; the in-memory change stands.
func (l *Ledger) persist(op string) {
	if l.persister == nil {
		return
	}
	err := l.persister.Save(models.ToRecords(l.txs))
	if err == nil {
		l.lastPersistErr = nil
		return
	}

	var pe *ledgererror.PersistenceError
	if !errors.As(err, &pe) {
		err = &ledgererror.PersistenceError{Op: ledgererror.OpSave, Err: err}
	}
	l.lastPersistErr = err
	l.logger.WithError(err).Warn("Failed to persist ledger; in-memory state kept",
		logging.F(logging.FieldOperation, op),
		logging.F(logging.FieldCount, len(l.txs)))
}
