package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/logging"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: 1, Description: "Salary", Amount: json.Number("1500"), Kind: "income", Category: "Salary", Date: "2024-01-05"},
		{ID: 2, Description: "Rent", Amount: json.Number("800.25"), Kind: "expense", Category: "Housing", Date: "2024-01-06"},
	}
}

func TestFileStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(t.TempDir(), "", nil)

	records, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, models.DefaultStorageKey, s.Key())
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewFileStore(dir, "transactions", nil)

	require.NoError(t, s.Save(sampleRecords()))
	assert.FileExists(t, filepath.Join(dir, "transactions.json"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDataFile, info.Mode().Perm())

	records, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
	assert.NoError(t, s.Close())
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := NewFileStore(t.TempDir(), "transactions", nil)

	require.NoError(t, s.Save(sampleRecords()))
	require.NoError(t, s.Save(sampleRecords()[:1]))

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileStore_MalformedDocumentLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{broken"), 0600))

	logger := logging.NewMockLogger()
	s := NewFileStore(dir, "transactions", logger)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.True(t, logger.HasEntry("WARN", "Malformed snapshot, starting empty"))
}

func TestFileStore_UndecodableEntriesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	doc := `[{"id":1,"description":"ok","amount":1,"kind":"income","category":"Salary","date":"2024-01-01"},{"id":"x"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte(doc), 0600))

	logger := logging.NewMockLogger()
	s := NewFileStore(dir, "transactions", logger)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.True(t, logger.HasEntry("WARN", "Skipped undecodable entries"))
}

func TestFileStore_ReadFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the snapshot file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "transactions.json"), 0750))

	s := NewFileStore(dir, "transactions", nil)
	_, err := s.Load()
	require.Error(t, err)

	var perr *ledgererror.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ledgererror.OpLoad, perr.Op)
	assert.Equal(t, "transactions", perr.Key)
}

func TestFileStore_WriteFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	// The storage directory cannot be created below a regular file.
	s := NewFileStore(filepath.Join(blocker, "data"), "transactions", nil)
	err := s.Save(sampleRecords())
	require.Error(t, err)
	assert.True(t, ledgererror.IsPersistence(err))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("json", dir, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open("", dir, "ledger", nil)
	require.NoError(t, err)
	assert.Equal(t, "ledger", s.Key())

	s, err = Open("sqlite", dir, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("postgres", dir, "", nil)
	assert.Error(t, err)
}
