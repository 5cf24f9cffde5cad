// Package storage provides implementations of the store's persistence port.
// Every backend keeps the whole record set as one JSON array blob under a
// single key; there is no per-record persistence.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// BlobKey is the single key the snapshot lives under in keyed backends.
const BlobKey = "stockdata"

func encodeRecords(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

func decodeRecords(data []byte) ([]models.Record, error) {
	if len(data) == 0 {
		return []models.Record{}, nil
	}
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}
