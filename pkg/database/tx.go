package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TxDB adapts an open transaction to PgxIface so repositories can run inside it.
type TxDB struct {
	tx pgx.Tx
}

func NewTxDB(tx pgx.Tx) *TxDB {
	return &TxDB{tx: tx}
}

// Query implements PgxIface
func (db *TxDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.tx.Query(ctx, sql, args...)
}

// QueryRow implements PgxIface
func (db *TxDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.tx.QueryRow(ctx, sql, args...)
}

// Exec implements PgxIface
func (db *TxDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.tx.Exec(ctx, sql, args...)
}

// Begin starts a savepoint inside the transaction
func (db *TxDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.tx.Begin(ctx)
}

// Ping implements PgxIface
func (db *TxDB) Ping(ctx context.Context) error {
	return db.tx.Conn().Ping(ctx)
}

// Close is a no-op, the owner commits or rolls back the transaction
func (db *TxDB) Close() {}
