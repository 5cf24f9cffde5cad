package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/stocktrack/internal/filex"
	"github.com/dmitrijs2005/stocktrack/internal/models"
	"github.com/dmitrijs2005/stocktrack/internal/shared"
)

// FileStorage keeps the snapshot in a single JSON file. Writes go through a
// temp file and rename so a crash mid-write cannot leave a torn blob.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the snapshot. A missing file is an empty store, not an error.
func (f *FileStorage) Load(ctx context.Context) ([]models.Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return decodeRecords(data)
}

// Save replaces the snapshot atomically.
func (f *FileStorage) Save(ctx context.Context, records []models.Record) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	if _, err := filex.EnsureParentDir(f.path); err != nil {
		return err
	}

	suffix, err := shared.MakeRandHexString(4)
	if err != nil {
		return err
	}
	tmp := f.path + "." + suffix + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
