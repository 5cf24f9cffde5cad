// Package dbx provides a minimal database/sql abstraction shared by
// SQL-backed storage: an interface (DBTX) implemented by both *sql.DB and
// *sql.Tx, so the same code runs against a live handle or a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our storage backends.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
