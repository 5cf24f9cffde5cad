package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// MemoryStorage keeps the encoded blob in memory. Used by tests and for
// ephemeral runs. It round-trips through the same codec as the durable
// backends so serialization bugs surface in tests too.
type MemoryStorage struct {
	mu      sync.Mutex
	blob    []byte
	saveErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// FailSavesWith makes every subsequent Save return err (nil disables).
// Failure-injection point for persistence-rollback tests.
func (m *MemoryStorage) FailSavesWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MemoryStorage) Load(ctx context.Context) ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeRecords(m.blob)
}

func (m *MemoryStorage) Save(ctx context.Context, records []models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	m.blob = data
	return nil
}
