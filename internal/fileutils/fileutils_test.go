package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/pocket-ledger/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "transactions.json")

	require.NoError(t, fileutils.WriteFileAtomic(path, []byte(`[]`), 0600))
	require.NoError(t, fileutils.WriteFileAtomic(path, []byte(`[{"id":1}]`), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be renamed away")
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.pdf")

	f, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, fileutils.FileExists(path))
}

func TestDatedFileName(t *testing.T) {
	day := time.Date(2024, time.January, 5, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "financas_2024-01-05.csv", fileutils.DatedFileName("financas", "csv", day))
	assert.Equal(t, "financas_2024-01-05.pdf", fileutils.DatedFileName("financas", ".pdf", day))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".pocket-ledger"), fileutils.ExpandHome("~/.pocket-ledger"))
	assert.Equal(t, "/tmp/x", fileutils.ExpandHome("/tmp/x"))
	assert.Equal(t, "relative", fileutils.ExpandHome("relative"))
}
