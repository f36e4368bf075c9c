package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the plan, completion and confidence repos need.
// Repos built on *sql.DB run standalone; repos built on the *sql.Tx handed to
// WithinTx join that transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
