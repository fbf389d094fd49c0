// Package store implements the persistence port of the ledger: a single
// snapshot of transactions kept under one well-known key, backed by a JSON
// file, a SQLite database, or memory.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
)

// Store loads and saves the ledger snapshot.
//
// Load returns an empty slice when nothing has been stored yet or when the
// stored document is malformed; a *ledgererror.PersistenceError is returned
// only when the backend itself cannot be read.
type Store interface {
	Load() ([]models.Record, error)
	Save(records []models.Record) error
	Key() string
	Close() error
}

// Supported storage drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Open creates the Store for driver rooted at dir.
func Open(driver, dir, key string, logger logging.Logger) (Store, error) {
	if key == "" {
		key = models.DefaultStorageKey
	}
	switch strings.ToLower(driver) {
	case "", DriverJSON:
		return NewFileStore(dir, key, logger), nil
	case DriverSQLite:
		return NewSQLiteStore(filepath.Join(dir, "ledger.db"), key, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
