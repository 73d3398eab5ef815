package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type contextKey string

// DBTxKey is the context key holding an open transaction.
const DBTxKey contextKey = "db_tx"

// WithTx returns a context carrying the given transaction. Repositories
// route their queries through it so multi-statement operations share one
// transaction.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, DBTxKey, tx)
}

// TxFromContext retrieves the transaction from context, or nil when the
// context carries none.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(DBTxKey).(pgx.Tx)
	return tx
}
