package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore keeps the snapshot as one row of a key/value table.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	key    string
	logger logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// applies pending migrations.
func NewSQLiteStore(dbPath, key string, logger logging.Logger) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	if key == "" {
		key = models.DefaultStorageKey
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath, key: key, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Key returns the storage key.
func (s *SQLiteStore) Key() string {
	return s.key
}

// Load reads the snapshot row. A missing row is an empty ledger.
func (s *SQLiteStore) Load() ([]models.Record, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, &ledgererror.PersistenceError{Op: ledgererror.OpLoad, Key: s.key, Err: err}
	}

	records, dropped, err := DecodeRecords([]byte(value))
	if err != nil {
		s.logger.WithError(err).Warn("Malformed snapshot, starting empty",
			logging.F(logging.FieldStorageKey, s.key))
		return []models.Record{}, nil
	}
	if dropped > 0 {
		s.logger.Warn("Skipped undecodable entries",
			logging.F(logging.FieldDropped, dropped),
			logging.F(logging.FieldStorageKey, s.key))
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// Save upserts the snapshot row.
func (s *SQLiteStore) Save(records []models.Record) error {
	data, err := EncodeRecords(records)
	if err != nil {
		return &ledgererror.PersistenceError{Op: ledgererror.OpSave, Key: s.key, Err: err}
	}
	_, err = s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		s.key, string(data))
	if err != nil {
		return &ledgererror.PersistenceError{Op: ledgererror.OpSave, Key: s.key, Err: err}
	}
	s.logger.Debug("Snapshot saved",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldStorageKey, s.key))
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
