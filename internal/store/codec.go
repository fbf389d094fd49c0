package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/pocket-ledger/internal/models"
)

// EncodeRecords serializes a snapshot as a JSON array.
func EncodeRecords(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeRecords parses a JSON array snapshot. Blank input yields no records.
// Elements that cannot be decoded are skipped and counted in dropped; a
// document that is not an array at all is an error.
func DecodeRecords(data []byte) (records []models.Record, dropped int, err error) {
	elems, err := splitArray(data)
	if err != nil || elems == nil {
		return nil, 0, err
	}

	records = make([]models.Record, 0, len(elems))
	for _, raw := range elems {
		var rec models.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// legacyRecord is an entry written by the original browser app, whose
// localStorage export uses Portuguese field names.
type legacyRecord struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Kind        string      `json:"kind"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`

	Descricao string      `json:"descricao"`
	Valor     json.Number `json:"valor"`
	Tipo      string      `json:"tipo"`
	Categoria string      `json:"categoria"`
	Data      string      `json:"data"`
}

func (l legacyRecord) toRecord() models.Record {
	rec := models.Record{
		ID:          l.ID,
		Description: firstNonEmpty(l.Description, l.Descricao),
		Amount:      l.Amount,
		Kind:        firstNonEmpty(l.Kind, l.Tipo),
		Category:    firstNonEmpty(l.Category, l.Categoria),
		Date:        firstNonEmpty(l.Date, l.Data),
	}
	if rec.Amount == "" {
		rec.Amount = l.Valor
	}
	rec.Kind = models.TranslateLegacyKind(rec.Kind)
	rec.Category = models.TranslateLegacyCategory(rec.Category)
	return rec
}

// DecodeImport parses an export to be merged into the ledger. It accepts both
// our snapshot format and the original app's Portuguese one, and translates
// legacy kinds and default categories.
func DecodeImport(data []byte) (records []models.Record, dropped int, err error) {
	elems, err := splitArray(data)
	if err != nil || elems == nil {
		return nil, 0, err
	}

	records = make([]models.Record, 0, len(elems))
	for _, raw := range elems {
		var rec legacyRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			dropped++
			continue
		}
		records = append(records, rec.toRecord())
	}
	return records, dropped, nil
}

func splitArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("snapshot is not a JSON array: %w", err)
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
