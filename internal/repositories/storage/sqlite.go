package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/stocktrack/internal/dbx"
	"github.com/dmitrijs2005/stocktrack/internal/models"
	"github.com/dmitrijs2005/stocktrack/internal/repositories/storage/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps the snapshot as a single row in a key/value table.
// The schema is managed by embedded goose migrations; see OpenSQLite.
type SQLiteStorage struct {
	db dbx.DBTX
}

// NewSQLiteStorage binds the backend to a DBTX (either *sql.DB or *sql.Tx).
func NewSQLiteStorage(db dbx.DBTX) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// OpenSQLite opens (or creates) the database at dsn and applies pending
// migrations.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func (r *SQLiteStorage) Load(ctx context.Context) ([]models.Record, error) {
	var value []byte
	query := `SELECT value FROM blobs WHERE key = ?`
	err := r.db.QueryRowContext(ctx, query, BlobKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("select blob: %w", err)
	}
	return decodeRecords(value)
}

func (r *SQLiteStorage) Save(ctx context.Context, records []models.Record) error {
	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	query := `INSERT INTO blobs (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value,
				updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, BlobKey, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upsert blob: %w", err)
	}
	return nil
}
