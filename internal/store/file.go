package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fjacquet/pocket-ledger/internal/fileutils"
	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"
)

// FileStore keeps the snapshot as a JSON document at <dir>/<key>.json.
type FileStore struct {
	dir    string
	key    string
	logger logging.Logger
}

// NewFileStore creates a FileStore. The directory is created on first save.
func NewFileStore(dir, key string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Nop()
	}
	if key == "" {
		key = models.DefaultStorageKey
	}
	return &FileStore{dir: dir, key: key, logger: logger}
}

// Path returns the location of the snapshot file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Key returns the storage key.
func (s *FileStore) Key() string {
	return s.key
}

// Load reads the snapshot. A missing file is an empty ledger.
func (s *FileStore) Load() ([]models.Record, error) {
	path := s.Path()
	data, err := os.ReadFile(path) // #nosec G304 -- path is built from configured storage directory
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("No snapshot found, starting empty", logging.F(logging.FieldFile, path))
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, &ledgererror.PersistenceError{Op: ledgererror.OpLoad, Key: s.key, Err: err}
	}

	records, dropped, err := DecodeRecords(data)
	if err != nil {
		s.logger.WithError(err).Warn("Malformed snapshot, starting empty",
			logging.F(logging.FieldFile, path))
		return []models.Record{}, nil
	}
	if dropped > 0 {
		s.logger.Warn("Skipped undecodable entries",
			logging.F(logging.FieldDropped, dropped),
			logging.F(logging.FieldFile, path))
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// Save replaces the snapshot atomically.
func (s *FileStore) Save(records []models.Record) error {
	data, err := EncodeRecords(records)
	if err != nil {
		return &ledgererror.PersistenceError{Op: ledgererror.OpSave, Key: s.key, Err: err}
	}
	if err := fileutils.EnsureDirectoryExists(s.dir); err != nil {
		return &ledgererror.PersistenceError{Op: ledgererror.OpSave, Key: s.key, Err: err}
	}
	if err := fileutils.WriteFileAtomic(s.Path(), data, models.PermissionDataFile); err != nil {
		return &ledgererror.PersistenceError{
			Op:  ledgererror.OpSave,
			Key: s.key,
			Err: fmt.Errorf("error writing %s: %w", s.Path(), err),
		}
	}
	s.logger.Debug("Snapshot saved",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldFile, s.Path()))
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
