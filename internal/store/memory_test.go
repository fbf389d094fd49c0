package store

import (
	"errors"
	"testing"

	"fjacquet/pocket-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	var _ Store = (*MemoryStore)(nil)

	m := NewMemoryStore(sampleRecords()...)
	records, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)

	// Load returns a copy.
	records[0].Description = "changed"
	again, _ := m.Load()
	assert.Equal(t, "Salary", again[0].Description)

	require.NoError(t, m.Save(nil))
	assert.Equal(t, 1, m.Saves)
	records, err = m.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.Equal(t, models.DefaultStorageKey, m.Key())
	require.NoError(t, m.Close())
	assert.True(t, m.Closed)
}

func TestMemoryStore_Errors(t *testing.T) {
	m := &MemoryStore{LoadError: errors.New("load"), SaveError: errors.New("save")}

	_, err := m.Load()
	assert.EqualError(t, err, "load")
	assert.EqualError(t, m.Save(sampleRecords()), "save")
	assert.Zero(t, m.Saves)
}
