package store

import (
	"path/filepath"
	"testing"

	"fjacquet/pocket-ledger/internal/ledgererror"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"), "", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	records, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Equal(t, models.DefaultStorageKey, s.Key())
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(sampleRecords()))
	records, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)

	require.NoError(t, s.Save(sampleRecords()[1:]))
	records, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords()[1:], records)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := NewSQLiteStore(path, "transactions", nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(sampleRecords()))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path, "transactions", nil)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	a, err := NewSQLiteStore(path, "a", nil)
	require.NoError(t, err)
	require.NoError(t, a.Save(sampleRecords()))
	require.NoError(t, a.Close())

	b, err := NewSQLiteStore(path, "b", nil)
	require.NoError(t, err)
	defer b.Close()

	records, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_MalformedValueLoadsEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, s.Key(), "{oops")
	require.NoError(t, err)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_ClosedDatabaseIsPersistenceError(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"), "", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Load()
	assert.True(t, ledgererror.IsPersistence(err))

	err = s.Save(sampleRecords())
	assert.True(t, ledgererror.IsPersistence(err))
}

func TestSQLiteStore_SchemaVersion(t *testing.T) {
	s := newTestSQLiteStore(t)

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running migrations again is a no-op.
	require.NoError(t, s.migrate())
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("", "", nil)
	assert.Error(t, err)
}
