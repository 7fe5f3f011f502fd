package sqliterepo

import (
	"context"
	"database/sql"
)

type txKeyType struct{}

var txKey = txKeyType{}

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func getQuerier(ctx context.Context, base *sql.DB) querier {
	if v := ctx.Value(txKey); v != nil {
		if tx, ok := v.(*sql.Tx); ok && tx != nil {
			return tx
		}
	}
	return base
}
