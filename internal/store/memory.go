package store

import (
	"slices"

	"fjacquet/pocket-ledger/internal/models"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	Records []models.Record
	// StorageKey defaults to models.DefaultStorageKey.
	StorageKey string
	Saves      int
	Closed     bool

	// Error flags for testing error conditions
	LoadError error
	SaveError error
}

// NewMemoryStore creates a MemoryStore holding a copy of records.
func NewMemoryStore(records ...models.Record) *MemoryStore {
	return &MemoryStore{Records: slices.Clone(records)}
}

// Load returns a copy of the stored records.
func (m *MemoryStore) Load() ([]models.Record, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Records == nil {
		return []models.Record{}, nil
	}
	return slices.Clone(m.Records), nil
}

// Save replaces the stored records unless SaveError is set.
func (m *MemoryStore) Save(records []models.Record) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Records = slices.Clone(records)
	m.Saves++
	return nil
}

// Key returns the storage key.
func (m *MemoryStore) Key() string {
	if m.StorageKey == "" {
		return models.DefaultStorageKey
	}
	return m.StorageKey
}

// Close marks the store closed.
func (m *MemoryStore) Close() error {
	m.Closed = true
	return nil
}
